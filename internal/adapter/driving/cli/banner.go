package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/negreirosnet/netops-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$   /$$             /$$      /$$$$$$$   /$$$$$$   /$$$$$$  /$$   /$$
        | $$$ | $$            | $$     | $$__  $$ /$$__  $$ /$$__  $$| $$  | $$
        | $$$$| $$  /$$$$$$  /$$$$$$   | $$  \ $$| $$  \ $$| $$  \__/| $$  | $$
        | $$ $$ $$ /$$__  $$|_  $$_/   | $$  | $$| $$$$$$$$|  $$$$$$ | $$$$$$$$
        | $$  $$$$| $$$$$$$$  | $$     | $$  | $$| $$__  $$ \____  $$| $$__  $$
        | $$\  $$$| $$_____/  | $$ /$$ | $$  | $$| $$  | $$ /$$  \ $$| $$  | $$
        | $$ \  $$|  $$$$$$$  |  $$$$/ | $$$$$$$/| $$  | $$|  $$$$$$/| $$  | $$
        |__/  \__/ \_______/   \___/   |_______/ |__/  |__/ \______/ |__/  |__/
        `
	teal := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(teal(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Negreiros NET Dashboard CLI (v%s)", formattedVersion)))
}
