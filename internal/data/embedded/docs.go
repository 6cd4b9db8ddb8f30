package embedded

import _ "embed"

// GuideData contains the embedded user guide in Markdown form.
//
//go:embed docs/guide.md
var GuideData []byte
