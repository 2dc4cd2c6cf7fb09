package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"golang.org/x/term"

	"dmguide/internal/config"
	"dmguide/internal/debug"
	"dmguide/internal/guide"
	"dmguide/internal/model"
	"dmguide/internal/tui"
	"dmguide/internal/web"
)

// pickDetail is the --detail value when the flag is given without an ID.
const pickDetail = "pick"

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      model.RepoOwner,
		Repository: model.RepoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		debug.Log("update check failed", "err", err)
		fmt.Fprintf(os.Stderr, "Could not check for updates: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from https://github.com/%s/%s/releases\n", model.RepoOwner, model.RepoName)
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dmguide [options]\n\n")
		fmt.Fprintf(os.Stderr, "dmguide is an interactive study guide for frequent pattern mining:\n")
		fmt.Fprintf(os.Stderr, "itemset and sequential algorithms, flashcards, formulas and exam tips.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dmguide                 # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  dmguide -s flashcards   # Start on the flashcard deck\n")
		fmt.Fprintf(os.Stderr, "  dmguide --report        # Print the whole guide as Markdown\n")
		fmt.Fprintf(os.Stderr, "  dmguide -r -o guide.md  # Save the guide to a file\n")
		fmt.Fprintf(os.Stderr, "  dmguide --detail charm  # Print one algorithm's reference\n")
		fmt.Fprintf(os.Stderr, "  dmguide --web           # Serve the guide on http://127.0.0.1:8080\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output all content tables as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print the complete guide as Markdown (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report or --detail)")
	rawFlag := pflag.Bool("raw", false, "Print Markdown as-is instead of rendering it for the terminal")
	detailFlag := pflag.StringP("detail", "D", "", "Print the reference for one algorithm ("+idList()+"); with no value, pick from a list")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	addrFlag := pflag.String("addr", "", "Listen address for Web Mode (default from config, 127.0.0.1:8080)")
	sectionFlag := pflag.StringP("section", "s", "", "Section to start on (overview, algorithms, flashcards, formulas, tips)")
	darkFlag := pflag.Bool("dark", false, "Start in dark mode")
	configFlag := pflag.StringP("config", "c", "", "Config file (default "+config.ConfigPath()+")")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Lookup("detail").NoOptDefVal = pickDetail
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("dmguide version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	detail, rest := resolveDetail(*detailFlag, pflag.Args())
	if len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n", rest[0])
		pflag.Usage()
		os.Exit(2)
	}

	// Batch modes never read the config file.
	if *jsonFlag {
		runJsonMode()
		return
	}

	if *reportFlag {
		writeMarkdown(guide.GenerateReport(), *outputFlag, *rawFlag, *darkFlag)
		return
	}

	if detail != "" {
		runDetailMode(detail, *outputFlag, *rawFlag, *darkFlag)
		return
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	debug.Log("config loaded", "path", cfgPath, "section", cfg.UI.StartSection, "dark", cfg.UI.DarkMode)

	start := cfg.StartSection()
	if *sectionFlag != "" {
		sec, err := model.ParseSection(*sectionFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		start = sec
	}
	dark := cfg.UI.DarkMode
	if pflag.Lookup("dark").Changed {
		dark = *darkFlag
	}
	state := guide.NewState(guide.WithSection(start), guide.WithDarkMode(dark))

	if *webFlag {
		addr := cfg.Web.Addr
		if *addrFlag != "" {
			addr = *addrFlag
		}
		runWebMode(addr, state)
		return
	}

	// Default: TUI
	runTuiMode(state, cfg.UI.WordWrap)
}

// resolveDetail returns the --detail target and the positional arguments
// left over. pflag only binds a value to a flag with NoOptDefVal in the
// --detail=ID form, so "--detail ID" arrives as pickDetail plus a
// positional ID.
func resolveDetail(value string, args []string) (string, []string) {
	if value == pickDetail && len(args) > 0 {
		return args[0], args[1:]
	}
	return value, args
}

func idList() string {
	ids := model.AlgorithmIDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}

func runDetailMode(arg, outputFile string, raw, dark bool) {
	id := model.AlgorithmID(arg)
	if arg == pickDetail {
		picked, err := pickAlgorithm()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		id = picked
	}

	md, err := guide.AlgorithmReport(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (choose one of %s)\n", err, idList())
		os.Exit(2)
	}
	writeMarkdown(md, outputFile, raw, dark)
}

func pickAlgorithm() (model.AlgorithmID, error) {
	var choice string
	var opts []huh.Option[string]
	for _, id := range model.AlgorithmIDs() {
		entry, _ := model.Algorithm(id)
		opts = append(opts, huh.NewOption(entry.Name, string(id)))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Which algorithm?").
			Options(opts...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return model.NoAlgorithm, err
	}
	return model.AlgorithmID(choice), nil
}

// writeMarkdown saves md to outputFile, or prints it, rendered with glamour
// when stdout is a terminal.
func writeMarkdown(md, outputFile string, raw, dark bool) {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(md), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
		return
	}

	fd := int(os.Stdout.Fd())
	if raw || !term.IsTerminal(fd) {
		fmt.Print(md)
		return
	}

	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
		width = w
	}
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

func runJsonMode() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.AllContent()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWebMode(addr string, state guide.ViewState) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(guide.NewStore(state))
	if err := srv.Run(ctx, addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(state guide.ViewState, wordWrap int) {
	m := tui.InitialModel(state, wordWrap)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
