package ffufgen

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

const banner = ` __  __           _        _
|  \/  | __ _  __| | ___  | |__  _   _
| |\/| |/ _` + "`" + ` |/ _` + "`" + ` |/ _ \ | '_ \| | | |
| |  | | (_| | (_| |  __/ | |_) | |_| |
|_|  |_|\__,_|\__,_|\___| |_.__/ \__, |
                                 |___/
  __ _  __ _ ___ _ __   __ _ _ __
 / _` + "`" + ` |/ _` + "`" + ` / __| '_ \ / _` + "`" + ` | '__|
| (_| | (_| \__ \ |_) | (_| | |
 \__, |\__,_|___/ .__/ \__,_|_|
 |___/          |_|`

// PrintBanner writes the startup banner. Color is only applied when the
// destination is a terminal.
func PrintBanner(w io.Writer, color bool) {
	au := aurora.NewAurora(color)
	fmt.Fprintln(w, au.Cyan(banner))
}
