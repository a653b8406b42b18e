package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/invview/internal/game"
	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/parser"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateItemsDoc(inventory.NewPolicy(nil)),
		generateConsoleDoc(parser.New().Commands()),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

// generateItemsDoc lists the demo catalog in inventory display order.
func generateItemsDoc(policy *inventory.Policy) docFile {
	templates := game.Catalog()
	sort.SliceStable(templates, func(i, j int) bool {
		return policy.Less(templates[i].Item(), templates[j].Item())
	})

	var b strings.Builder
	b.WriteString("# Item Catalog\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`Catalog`), ordered as the inventory shows it.\n\n")
	b.WriteString(fmt.Sprintf("Total templates: **%d**.\n\n", len(templates)))
	writeHeader(&b, "Instance", "Name", "Category", "Group", "Value", "Damage", "Protection", "Weight (kg)", "Max Stack")
	for _, t := range templates {
		it := t.Item()
		writeRow(&b,
			escape(t.Instance),
			escape(t.Name),
			escape(string(policy.Classify(it))),
			escape(policy.Bucket(it).String()),
			strconv.Itoa(t.Value),
			orDash(t.Damage),
			orDash(t.Protection),
			formatFloat(t.WeightKg),
			strconv.Itoa(max(t.MaxStack, 1)),
		)
	}

	return docFile{Name: "items.md", Title: "Item Catalog", Content: b.String()}
}

func generateConsoleDoc(commands []parser.CommandDef) docFile {
	sort.Slice(commands, func(i, j int) bool { return commands[i].Canonical < commands[j].Canonical })

	var b strings.Builder
	b.WriteString("# Console Commands\n\n")
	b.WriteString("Source: `internal/parser/commands.go` (`defaultCommands`).\n\n")
	b.WriteString("Names are matched fuzzily against the list in the Resolves column; ")
	b.WriteString("`it` refers to the last item acted on.\n\n")
	writeHeader(&b, "Command", "Aliases", "Arguments", "Resolves")
	for _, c := range commands {
		writeRow(&b, escape(c.Canonical), escape(strings.Join(c.Aliases, ", ")), formatArgs(c.MinArgs, c.MaxArgs), poolName(c.Pool))
	}

	return docFile{Name: "console.md", Title: "Console Commands", Content: b.String()}
}

func writeHeader(b *strings.Builder, titles ...string) {
	writeRow(b, titles...)
	rule := make([]string, len(titles))
	for i := range rule {
		rule[i] = "---"
	}
	writeRow(b, rule...)
}

func writeRow(b *strings.Builder, cells ...string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func formatArgs(minArgs, maxArgs int) string {
	switch {
	case maxArgs == 0:
		return "none"
	case minArgs == maxArgs:
		return strconv.Itoa(minArgs)
	default:
		return fmt.Sprintf("%d-%d", minArgs, maxArgs)
	}
}

func poolName(p parser.Pool) string {
	switch p {
	case parser.PoolOwn:
		return "own items"
	case parser.PoolOther:
		return "container items"
	case parser.PoolContainers:
		return "containers"
	case parser.PoolBuckets:
		return "item groups"
	default:
		return ""
	}
}

func orDash(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
