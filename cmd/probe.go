package main

import (
	"context"
	"fmt"
	"os"
	"spacescope/pkg/remote"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type probe struct {
	name string
	path string
}

// gatewayProbes are the routes checked by the probe command.
var gatewayProbes = []probe{ //nolint: gochecknoglobals
	{name: "ISS Data", path: "/api/iss"},
	{name: "Solar Data", path: "/api/solar"},
	{name: "SpaceX Launch", path: "/api/spacex"},
	{name: "NASA TechPort", path: "/api/techport"},
	{name: "RAG Engine", path: "/rag?q=Is%20Propulsion%20Cool"},
}

// probeResult is the outcome of one probe: Transport is how the gateway
// itself answered and Tag is the _status it reported for its upstream.
type probeResult struct {
	Name      string
	URL       string
	Transport remote.Status
	Tag       string
	Origin    string
}

func (r probeResult) Live() bool {
	return r.Transport == remote.StatusLive && r.Tag == string(remote.StatusLive)
}

// runProbes checks every probe against base concurrently. Results keep the
// order of probes.
func runProbes(ctx context.Context, f *remote.Fetcher, base string, probes []probe) []probeResult {
	base = strings.TrimRight(base, "/")
	results := make([]probeResult, len(probes))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range probes {
		g.Go(func() error {
			url := base + p.path
			res := remote.Fetch[map[string]any](gctx, f, url, nil)

			r := probeResult{Name: p.name, URL: url, Transport: res.Status}
			r.Tag, _ = res.Payload["_status"].(string)
			r.Origin, _ = res.Payload["_origin"].(string)
			results[i] = r

			return nil
		})
	}
	_ = g.Wait()

	return results
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))   //nolint: gochecknoglobals
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))   //nolint: gochecknoglobals
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFC107"))   //nolint: gochecknoglobals
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935"))   //nolint: gochecknoglobals
	nameStyle  = lipgloss.NewStyle().Width(16)                                          //nolint: gochecknoglobals
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850")).Italic(true) //nolint: gochecknoglobals
)

// renderReport formats results as one line per probe.
func renderReport(results []probeResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Diagnostics") + "\n")

	for _, r := range results {
		var state string
		switch {
		case r.Live():
			state = okStyle.Render("ONLINE")
		case r.Transport != remote.StatusLive:
			state = failStyle.Render("UNREACHABLE (" + string(r.Transport) + ")")
		default:
			state = warnStyle.Render("DEGRADED (" + r.Tag + ", " + r.Origin + ")")
		}
		b.WriteString(nameStyle.Render(r.Name) + " " + state + " " + mutedStyle.Render(r.URL) + "\n")
	}

	return b.String()
}

func probeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Checks the gateway routes and reports their upstream status",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _ := cmd.Flags().GetString("base")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			f, err := remote.New(remote.Options{Timeout: timeout, UserAgent: "spacescope-probe"})
			if err != nil {
				return fmt.Errorf("could not create fetcher: %w", err)
			}

			results := runProbes(cmd.Context(), f, base, gatewayProbes)
			fmt.Print(renderReport(results)) //nolint: forbidigo

			for _, r := range results {
				if !r.Live() {
					os.Exit(1)
				}
			}

			return nil
		},
	}

	cmd.Flags().String("base", "http://localhost:8000", "Gateway base URL")
	cmd.Flags().Duration("timeout", 10*time.Second, "Time budget of each probe") //nolint: mnd

	return cmd
}
