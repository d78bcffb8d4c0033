// Command shapedemo renders a small gallery of type-erased shapes.
//
// The gallery holds a circle, a square, and a second circle with an injected
// draw strategy, demonstrating that a single []shapes.Shape can mix
// unrelated value types and per-instance behavior.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shapes"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("shapedemo: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "shapedemo",
		Short: "Draw and serialize a heterogeneous gallery of shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return run()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

// buildGallery assembles the demo sequence: a circle, a square, and a circle
// whose draw behavior is injected per instance.
func buildGallery() ([]shapes.Shape, error) {
	var gallery []shapes.Shape

	s, err := shapes.New(shapes.NewCircle(2.0))
	if err != nil {
		return nil, err
	}
	gallery = append(gallery, s)

	s, err = shapes.New(shapes.NewSquare(1.5))
	if err != nil {
		return nil, err
	}
	gallery = append(gallery, s)

	outline := func(c shapes.Circle) error {
		_, err := fmt.Fprintf(shapes.Output(), "outline-only circle(radius=%g)\n", c.Radius())
		return err
	}
	s, err = shapes.New(shapes.NewCircle(4.2), shapes.WithDrawer(outline))
	if err != nil {
		return nil, err
	}
	gallery = append(gallery, s)

	return gallery, nil
}

func run() error {
	gallery, err := buildGallery()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Drawing all shapes"))
	for i, s := range gallery {
		fmt.Println(labelStyle.Render(fmt.Sprintf("[%d] %s", i, s)))
		if err := shapes.Draw(s); err != nil {
			return err
		}
	}

	fmt.Println(titleStyle.Render("Serializing all shapes"))
	for _, s := range gallery {
		if err := shapes.Serialize(s); err != nil {
			return err
		}
	}

	p := message.NewPrinter(language.English)
	p.Printf("rendered %d shapes\n", len(gallery))
	return nil
}
