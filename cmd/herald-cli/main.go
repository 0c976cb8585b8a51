package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/herald-cms/go-herald/pkg/catalog"
	"github.com/herald-cms/go-herald/pkg/tui"
	"github.com/herald-cms/go-herald/pkg/validate"
	"github.com/herald-cms/go-herald/pkg/widget"
)

func main() {
	input := flag.String("input", "", "serialized schema value to edit (reads the file when the value names one)")
	output := flag.String("output", "", "output file (stdout if empty)")
	locale := flag.String("locale", catalog.DefaultLocale, "display locale (en or ja)")
	check := flag.Bool("check", true, "report catalog validation issues after editing")
	flag.Parse()

	ctx := context.Background()

	store, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load schema catalog: %v", err)
	}

	var options []widget.Option
	options = append(options, widget.WithLocale(*locale))
	if raw := readInput(*input); raw != "" {
		options = append(options, widget.WithSerialized(raw))
	}
	w := widget.New(store, options...)

	editor := tui.New(tui.WithLocale(*locale))
	serialized, err := editor.Run(ctx, store, w)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted; nothing written.")
			os.Exit(1)
		}
		log.Fatalf("Editing session failed: %v", err)
	}

	if *check {
		result := validate.New(store).ValidateState(w.GetState())
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(serialized+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Schema value written to %s\n", *output)
	} else {
		fmt.Println(serialized)
	}
}

// readInput accepts either a literal serialized value or a path to a file
// containing one.
func readInput(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "{") {
		return value
	}
	data, err := os.ReadFile(value)
	if err != nil {
		log.Fatalf("Failed to read input %q: %v", value, err)
	}
	return strings.TrimSpace(string(data))
}
