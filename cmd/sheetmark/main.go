package main

import (
	"bufio"
	"fmt"
	"os"
)

const (
	appName    = "Sheetmark"
	appVersion = "1.0.0"
	appDesc    = "Converts spreadsheets to Markdown tables and Markdown tables to outlines"
)

func main() {
	var pause bool

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			os.Exit(2)
		}
	}()

	root := newRootCommand(&pause)
	exitCode := 0
	if err := root.Execute(); err != nil {
		exitCode = 1
	}

	if pause {
		waitForEnter()
	}
	os.Exit(exitCode)
}

// waitForEnter keeps a double-clicked console window open until Enter is pressed
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      SHEETMARK v1.0.0                     ║
║      Spreadsheets → Markdown tables → Markdown outlines    ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
