package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skybox-cli/skybox/internal/provision"
)

var (
	outColorGreen = lipgloss.Color("#22c55e")
	outColorBlue  = lipgloss.Color("#3b82f6")
	outColorDim   = lipgloss.Color("#6b7280")
	outColorWhite = lipgloss.Color("#f9fafb")
)

var (
	outTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(outColorWhite)

	outSectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(outColorBlue)

	outDimStyle = lipgloss.NewStyle().
			Foreground(outColorDim)

	outGreenStyle = lipgloss.NewStyle().
			Foreground(outColorGreen)
)

// renderOutputs produces a lipgloss-styled deployment summary string.
func renderOutputs(title string, out *provision.Outputs) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(outTitleStyle.Render(fmt.Sprintf("  %s: %s", title, out.Tenant)))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(outSectionStyle.Render("  Instance"))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")
	renderRow(&b, "Name", out.Instance)
	renderRow(&b, "ID", out.InstanceID)
	renderRow(&b, "Provider", fmt.Sprintf("%s (%s)", out.Provider, out.Region))
	if out.State != "" {
		renderRow(&b, "State", outGreenStyle.Render(out.State))
	}
	renderRow(&b, "Public IP", out.PublicIP)
	renderRow(&b, "Private IP", out.PrivateIP)

	if out.NetworkID != "" || out.SecurityGroupID != "" {
		b.WriteString("\n")
		b.WriteString(outSectionStyle.Render("  Network"))
		b.WriteString("\n")
		b.WriteString(outDimStyle.Render("  " + strings.Repeat("─", 40)))
		b.WriteString("\n")
		renderRow(&b, "Network", out.NetworkID)
		renderRow(&b, "Subnet", out.SubnetID)
		renderRow(&b, "Firewall", out.SecurityGroupID)
	}

	b.WriteString("\n")
	b.WriteString(outSectionStyle.Render("  Access"))
	b.WriteString("\n")
	b.WriteString(outDimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n")
	renderRow(&b, "Key", out.KeyName)
	renderRow(&b, "Key File", out.KeyFile)
	renderRow(&b, "User", out.AdminUser)
	if out.SSHCommand != "" {
		b.WriteString("\n")
		b.WriteString("    " + outGreenStyle.Render(out.SSHCommand))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderRow(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    %-12s %s\n", label, value)
}
