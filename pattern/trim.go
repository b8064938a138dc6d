package pattern

import "strings"

// TrimLeading removes leading whitespace from the leading literal items of a
// scanned pattern. Whitespace just inside a quoted literal's opening boundary
// is removed too; interior whitespace is left alone. Items whose text becomes
// empty are dropped. Used when parse styles allow leading whitespace.
func TrimLeading(items []Item) []Item {
	return trimEdge(items, true)
}

// TrimTrailing is the mirror of TrimLeading for trailing literal items.
func TrimTrailing(items []Item) []Item {
	return trimEdge(items, false)
}

func trimEdge(items []Item, leading bool) []Item {
	out := append([]Item(nil), items...)

	for len(out) > 0 {
		pos := 0
		if !leading {
			pos = len(out) - 1
		}

		item := out[pos]
		if item.Kind != Literal {
			break
		}

		var trimmed string
		if leading {
			trimmed = strings.TrimLeft(item.Text, " \t")
		} else {
			trimmed = strings.TrimRight(item.Text, " \t")
		}

		if trimmed == item.Text {
			break
		}

		if trimmed == "" {
			out = append(out[:pos], out[pos+1:]...)
			continue
		}

		out[pos].Text = trimmed

		break
	}

	return out
}
