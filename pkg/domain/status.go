package domain

// Gateway states reported by the system monitor.
const (
	GatewayOnline  = "ONLINE"
	GatewayOffline = "OFFLINE"
)

// SystemStatus summarizes the health of the upstream dependencies. Each
// dependency field holds the status tag of its latest probe.
type SystemStatus struct {
	Gateway   string `json:"gateway"`
	ISS       string `json:"iss"`
	Solar     string `json:"solar"`
	Database  string `json:"database"`
	Assistant string `json:"assistant"`
}
