// assets/assets.go
package assets

import _ "embed"

// Theme toggle icons, embedded so the binary ships self-contained.

//go:embed icon/sun.svg
var IconSunSVG []byte

//go:embed icon/moon.svg
var IconMoonSVG []byte
