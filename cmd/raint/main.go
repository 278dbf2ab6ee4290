// Command raint is an interactive terminal pixel editor.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/rastkit/raint"
	"github.com/rastkit/raint/internal/editor"
)

func main() {
	var (
		width   = flag.Int("width", 0, "canvas width in pixels (skips the size prompt)")
		height  = flag.Int("height", 0, "canvas height in pixels (defaults to width)")
		half    = flag.Bool("half", false, "render two pixels per terminal row")
		logPath = flag.String("log", "", "append debug logs to this file")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		raint.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := editor.Options{Projection: editor.ProjectionWide}
	if *half {
		opts.Projection = editor.ProjectionHalf
	}

	if path := flag.Arg(0); path != "" {
		c, err := editor.LoadCanvas(editor.ExpandPath(path))
		if err != nil {
			log.Fatalf("Failed to load %s: %v", path, err)
		}
		opts.Canvas = c
	}

	if opts.Canvas == nil {
		if *width > 0 {
			opts.Width = *width
			opts.Height = *height
			if opts.Height <= 0 {
				opts.Height = *width
			}
		} else {
			banner()
			w, h, ok := promptSize()
			if !ok {
				return
			}
			opts.Width, opts.Height = w, h
		}
	}

	if err := runEditor(opts); err != nil {
		log.Fatalf("Editor failed: %v", err)
	}
	fmt.Println("Thanks for using the ASCII Image Editor!")
}

func banner() {
	fmt.Println("\n╔════════════════════════════════════════╗")
	fmt.Printf("║      Raint - v.%-23s║\n", raint.Version)
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Enter canvas size (width height) or single number for square.")
	fmt.Printf("Range: %d-%d pixels\n", raint.MinCanvasSize, raint.MaxCanvasSize)
	fmt.Println("Examples: '40' or '80 40'")
	fmt.Println()
}

// promptSize reads the canvas size from stdin. Blank lines re-prompt;
// it reports false when input is exhausted before a size is entered.
func promptSize() (width, height int, ok bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Size> ")
		if !scanner.Scan() {
			return 0, 0, false
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if w, h, valid := editor.ParseSize(line); valid {
			return w, h, true
		}
		fmt.Println("Invalid input. Try again.")
	}
}

func runEditor(opts editor.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return editor.NewApp(screen, opts).Run()
}
