package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"factcloud/internal/adapter/fs"
)

// minProgressFiles is the file count below which no bar is drawn.
const minProgressFiles = 5

// newProgress returns a progress callback drawing to w, or nil when w is not a
// terminal. Each fact source needs its own callback.
func newProgress(w io.Writer) fs.ProgressFunc {
	if !isTerminal(w) {
		return nil
	}
	return newProgressBar(w)
}

// newProgressBar creates the bar on the first call, once the total is known.
func newProgressBar(w io.Writer) fs.ProgressFunc {
	var bar *progressbar.ProgressBar
	var mu sync.Mutex
	var initialized bool

	return func(processed, total int, _ string) {
		mu.Lock()
		defer mu.Unlock()

		if !initialized {
			initialized = true
			if total < minProgressFiles {
				return
			}
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Reading facts[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}

		if bar != nil {
			_ = bar.Set(processed)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
