package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/casualjim/hoot"
	"github.com/casualjim/hoot/pkg/stdx"
	"github.com/charmbracelet/glamour"
	"github.com/prometheus/client_golang/prometheus"
)

var glam = stdx.Must1(glamour.NewTermRenderer(
	glamour.WithAutoStyle(),
	glamour.WithWordWrap(120),
))

// renderReport renders the registry and the collected metrics as markdown for the terminal.
func renderReport(agg *hoot.Aggregator, gatherer prometheus.Gatherer) (string, error) {
	var b strings.Builder

	b.WriteString("# Registry\n\n")
	fmt.Fprintf(&b, "%d live subscriptions, %d registry entries.\n\n", len(agg.Subscriptions()), agg.Len())
	b.WriteString("| Subscription | Subscriber | Handles |\n|---|---|---|\n")
	for _, sub := range agg.Subscriptions() {
		handles := make([]string, len(sub.Handles))
		for i, h := range sub.Handles {
			handles[i] = fmt.Sprintf("`%s` → %s", sub.Methods[i], h)
		}
		if len(handles) == 0 {
			handles = append(handles, "_nothing_")
		}
		fmt.Fprintf(&b, "| %s | `%s` | %s |\n", sub.ID, sub.SubscriberType, strings.Join(handles, "<br>"))
	}

	families, err := gatherer.Gather()
	if err != nil {
		return "", fmt.Errorf("failed to gather metrics: %w", err)
	}
	b.WriteString("\n# Metrics\n\n| Metric | Labels | Value |\n|---|---|---|\n")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			sort.Strings(labels)

			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			fmt.Fprintf(&b, "| %s | %s | %g |\n", mf.GetName(), strings.Join(labels, ", "), value)
		}
	}

	return glam.Render(b.String())
}
