package remote_test

import (
	"encoding/json"
	"spacescope/pkg/remote"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_MarshalFlattensObject(t *testing.T) {
	b, err := json.Marshal(remote.Live(payload{X: 42}))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":42,"_status":"live","_origin":"remote-api"}`, string(b))

	b, err = json.Marshal(remote.Degrade(payload{X: 0}, remote.StatusSimulated))
	require.NoError(t, err)
	require.JSONEq(t, `{"x":0,"_status":"simulated","_origin":"local-fallback"}`, string(b))
}

func TestResult_MarshalWrapsNonObject(t *testing.T) {
	b, err := json.Marshal(remote.Degrade([]int{1, 2}, remote.StatusError))
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[1,2],"_status":"error","_origin":"gateway-error"}`, string(b))
}

func TestResult_UnmarshalObject(t *testing.T) {
	var res remote.Result[payload]
	require.NoError(t, json.Unmarshal([]byte(`{"x":9,"_status":"error","_origin":"gateway-error"}`), &res))
	require.Equal(t, remote.Degrade(payload{X: 9}, remote.StatusError), res)
}

func TestResult_UnmarshalData(t *testing.T) {
	var res remote.Result[[]string]
	require.NoError(t, json.Unmarshal([]byte(`{"data":["a"],"_status":"live","_origin":"remote-api"}`), &res))
	require.Equal(t, remote.Live([]string{"a"}), res)
}

func TestResult_UnmarshalInvalid(t *testing.T) {
	var res remote.Result[payload]
	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &res))
}

func TestMap(t *testing.T) {
	toString := func(p payload) string { return strconv.Itoa(p.X) }

	live := remote.Map(remote.Live(payload{X: 3}), toString, "none")
	require.Equal(t, remote.Live("3"), live)

	degraded := remote.Map(remote.Degrade(payload{X: 3}, remote.StatusError), toString, "none")
	require.Equal(t, remote.Degrade("none", remote.StatusError), degraded)
}

func TestWorst(t *testing.T) {
	require.Equal(t, remote.StatusLive, remote.Worst())
	require.Equal(t, remote.StatusLive, remote.Worst(remote.StatusLive, remote.StatusLive))
	require.Equal(t, remote.StatusError, remote.Worst(remote.StatusLive, remote.StatusError))
	require.Equal(t, remote.StatusSimulated, remote.Worst(remote.StatusError, remote.StatusSimulated))
	require.True(t, remote.StatusError.Degraded())
	require.False(t, remote.StatusLive.Degraded())
}
