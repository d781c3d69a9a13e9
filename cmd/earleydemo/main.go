/*
earleydemo is a non-normative command-line driver for the earley
module: it loads a BNF grammar from a file, evaluates one or more
input sentences against it, and reports Accepted/Rejected plus the
resulting parse forest.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/brycefield/earley"
	"github.com/brycefield/earley/forest"
)

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func main() {
	initDisplay()
	grammarPath := flag.String("grammar", "", "path to a BNF grammar file")
	delim := flag.String("delim", "", "tokenizer delimiter; empty means per-character")
	asJSON := flag.Bool("json", false, "dump the parse forest as JSON instead of a tree view")
	repl := flag.Bool("repl", false, "read input sentences interactively")
	flag.Parse()

	if *grammarPath == "" {
		pterm.Error.Println("a -grammar file is required")
		os.Exit(2)
	}
	grammarText, err := os.ReadFile(*grammarPath)
	if err != nil {
		pterm.Error.Printfln("reading grammar file: %v", err)
		os.Exit(2)
	}

	var delimiter *rune
	if *delim != "" {
		r := []rune(*delim)[0]
		delimiter = &r
	}

	if *repl {
		runREPL(string(grammarText), delimiter, *asJSON)
		return
	}

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input == "" {
		pterm.Error.Println("no input given; pass it as trailing arguments or use -repl")
		os.Exit(2)
	}
	evaluateAndReport(string(grammarText), input, delimiter, *asJSON)
}

func runREPL(grammarText string, delimiter *rune, asJSON bool) {
	pterm.Info.Println("earleydemo REPL — enter a sentence, <ctrl>D to quit")
	rl, err := readline.New("earley> ")
	if err != nil {
		pterm.Error.Printfln("starting REPL: %v", err)
		os.Exit(3)
	}
	defer rl.Close()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on <ctrl>D
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		evaluateAndReport(grammarText, line, delimiter, asJSON)
	}
	pterm.Info.Println("good bye")
}

func evaluateAndReport(grammarText, input string, delimiter *rune, asJSON bool) {
	outcome, err := earley.Evaluate(grammarText, input, delimiter)
	if err != nil {
		pterm.Error.Printfln("%v", err)
		return
	}
	switch o := outcome.(type) {
	case earley.Rejected:
		pterm.Error.Printfln("rejected: %q", input)
	case earley.Accepted:
		pterm.Info.Printfln("accepted: %q (chart length %d)", input, o.ChartLen())
		trees, err := o.ParseForest()
		if err != nil {
			pterm.Error.Printfln("%v", err)
			return
		}
		reportForest(trees, asJSON)
	}
}

func reportForest(trees []forest.Tree, asJSON bool) {
	if asJSON {
		data, err := json.MarshalIndent(trees, "", "  ")
		if err != nil {
			pterm.Error.Printfln("%v", err)
			return
		}
		fmt.Println(string(data))
		return
	}
	pterm.Printfln("%d distinct tree(s)", len(trees))
	for i, tr := range trees {
		pterm.Println(fmt.Sprintf("--- tree %d ---", i))
		pterm.DefaultTree.WithRoot(treeNode(tr)).Render()
	}
}

func treeNode(tr forest.Tree) pterm.TreeNode {
	node := pterm.TreeNode{Text: tr.LHS.String()}
	for _, b := range tr.Branches {
		if b.Kind == forest.BranchTerminal {
			node.Children = append(node.Children, pterm.TreeNode{Text: fmt.Sprintf("%q", b.Terminal)})
			continue
		}
		node.Children = append(node.Children, treeNode(*b.Child))
	}
	return node
}
