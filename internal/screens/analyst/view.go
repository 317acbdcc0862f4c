package analyst

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/market"
	"github.com/alphaquant/academy/internal/simulation"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/theme"
)

func renderHeader() string {
	badge := theme.Badge.Render("⚡ Alpha Arena Engine v2.0")
	title := theme.Title.Render("The Most Advanced AI Quant Training Environment")
	sub := theme.Subtitle.Render("Master the architecture of autonomous multi-agent trading systems with layered risk protection.")
	return lipgloss.JoinVertical(lipgloss.Center, badge, "", title, sub)
}

func heading(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s)
}

func renderOverview(width int) string {
	var b strings.Builder
	b.WriteString(heading("Autonomous Control Center") + "\n")
	b.WriteString(theme.Subtitle.Render("A multi-layered system designed to protect capital while aggressively pursuing alpha. "+
		"Manage 7 core AI features from a single unified control plane.") + "\n\n")
	for _, c := range catalog.ArenaCapabilities() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ ") + c + "\n")
	}
	if width >= 110 {
		b.WriteString("\n")
		for _, f := range catalog.ArenaFeatures() {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", f.Icon, theme.Selected.Render(f.Title),
				theme.Hint.Render(strings.Join(f.Stats, " · "))))
		}
	}
	return b.String()
}

func renderModels() string {
	var b strings.Builder
	b.WriteString(heading("Model Consensus Hub") + "\n\n")
	for _, m := range catalog.ConsensusModels() {
		b.WriteString("  🧠 " + theme.Selected.Render(m.Name) + "\n")
		b.WriteString("     " + theme.Subtitle.Render(m.Detail) + "\n")
	}
	return b.String()
}

func renderRisk() string {
	var b strings.Builder
	b.WriteString(heading("Institutional Guardrails") + "\n\n")
	for _, r := range catalog.RiskControls() {
		b.WriteString("  🛡 " + theme.Selected.Render(r.Name) + "\n")
		b.WriteString("     " + theme.Subtitle.Render(r.Detail) + "\n")
	}
	return b.String()
}

func renderBacktest(st simulation.State) string {
	res := simulation.CannedResults()
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(heading("Simulation Sandbox") + "\n\n")
	b.WriteString(label.Render("TEST: "+simulation.Ticker+"_STRAT_v2") + "  " +
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("READY") + "\n")
	rows := [][2]string{
		{"Iterations", fmt.Sprintf("%d Runs", simulation.Iterations)},
		{"Win Probability", fmt.Sprintf("%.1f%%", res.WinRate)},
		{"Est. Sharpe", fmt.Sprintf("%.2f", simulation.EstimatedSharpe)},
		{"Max Stress DD", fmt.Sprintf("%.1f%%", res.MaxDrawdown)},
	}
	for _, r := range rows {
		b.WriteString(label.Render(fmt.Sprintf("  %-16s", r[0])) + value.Render(r[1]) + "\n")
	}
	b.WriteString("\n")
	if st.IsSimulating() {
		b.WriteString(components.NewButton(fmt.Sprintf("Simulating... %d%%", st.Progress), false).View())
	} else {
		b.WriteString(components.NewButton("Start simulation (S)", true).View())
	}
	return b.String()
}

// renderTerminal draws the run log for st.
func renderTerminal(st simulation.State, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	good := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	accent := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var b strings.Builder
	b.WriteString(dim.Render("● ● ●  Quant-Terminal v2.0.4") + "\n\n")
	b.WriteString(good.Render("$ ") + "python enhanced_engine.py --backtest " + simulation.Ticker + "\n")

	if !st.Started() {
		b.WriteString(dim.Italic(true).Render("# Waiting for input. Press 'S' to run the AI analyst test."))
		return components.Card(b.String(), min(width, 64))
	}

	b.WriteString(accent.Render(fmt.Sprintf("🚀 STARTING SIMULATION: %s (%d iterations)", simulation.Ticker, simulation.Iterations)) + "\n")
	models := "LOADING..."
	if st.ModelsReady() {
		models = "COMPLETE"
	}
	b.WriteString(dim.Render("INITIALIZING MODELS: ") + good.Render(models) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("Computing %d Monte Carlo scenarios...", simulation.Iterations)) + "\n")
	b.WriteString(components.NewProgressBar("", float64(st.Progress)/100, true, 40).View() + "\n")

	if mid, ok := st.Midpoint(); ok {
		b.WriteString("\n" + accent.Render("Mid-point Report") + "\n")
		b.WriteString(dim.Render("Curr. Profit: ") + theme.Up.Render("+$"+market.FormatPrice(mid.Profit)) +
			dim.Render("   Win Rate: ") + fmt.Sprintf("%.1f%%", mid.WinRate) + "\n")
	}

	if st.Results != nil {
		r := st.Results
		b.WriteString("\n" + good.Render("✓ SIMULATION COMPLETE") + "\n")
		b.WriteString(dim.Render("Total P&L: ") + theme.Up.Render("+$"+market.FormatPrice(r.TotalPnL)) +
			dim.Render("   Sharpe: ") + theme.Up.Render(fmt.Sprintf("+%.3f", r.Sharpe)) + "\n")
		b.WriteString(dim.Render("Strategy Status: READY FOR PROPOSALS"))
	}
	return components.Card(b.String(), min(width, 64))
}
