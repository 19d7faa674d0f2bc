package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"profilecraft/internal/style"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// singleLine flattens pasted text for a layer: line breaks and tabs become
// spaces and other control characters are dropped.
func singleLine(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ReplaceAll(text, "\r\n", "\n") {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteRune(' ')
		case r >= 32 && r != 127:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// stylesheet renders a resolved design as standalone CSS: the keyframes,
// a .banner rule for the canvas and one .banner-layer-N rule per layer.
func stylesheet(res style.Result) string {
	var b strings.Builder
	b.WriteString(res.Keyframes)
	if p := res.Canvas.Particles; p != nil {
		b.WriteString(p.Keyframes)
	}
	fmt.Fprintf(&b, ".banner { %s }\n", res.Canvas.Declarations())
	if res.Canvas.Overlay != "" {
		fmt.Fprintf(&b, ".banner::before { content: \"\"; position: absolute; inset: 0; %s }\n", res.Canvas.Overlay)
	}
	for i, l := range res.Layers {
		fmt.Fprintf(&b, ".banner-layer-%d { %s }\n", i+1, l.Declarations())
	}
	return b.String()
}

// cycle returns the key after current in keys. An empty entry in front
// stands for "none" when withNone is set. Unknown current values start
// from the beginning.
func cycle(keys []string, current string, withNone bool) string {
	if withNone {
		keys = append([]string{""}, keys...)
	}
	if len(keys) == 0 {
		return current
	}
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
