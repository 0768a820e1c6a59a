package makefile

import "strings"

func write(sb *strings.Builder, s ...string) {
	for _, str := range s {
		sb.WriteString(str)
	}
}

func writeln(sb *strings.Builder, s ...string) {
	write(sb, s...)
	sb.WriteByte('\n')
}

// recipe writes one tab-indented recipe line. make rejects space-indented recipes.
func recipe(sb *strings.Builder, s ...string) {
	sb.WriteByte('\t')
	writeln(sb, s...)
}
