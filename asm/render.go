package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/ue14500/word"
)

// Render emits a program as assembly text, the inverse of Parse. Words
// are written with canonical lowercase mnemonics and octal numerals;
// comments keep their stored indentation.
func Render(nodes word.Nodes) string {
	var sb strings.Builder

	for _, node := range nodes {
		switch nd := node.(type) {
		case word.Word:
			fmt.Fprintf(&sb, "%s 0o%s 0o%s\n",
				nd.Inst().Name(), nd.Addr().Oct(), nd.Ctrl().Oct())
		case word.Comment:
			fmt.Fprintf(&sb, ";%s\n", string(nd))
		}
	}

	return sb.String()
}
