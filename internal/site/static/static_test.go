package static

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nexus/internal/contact"
	"github.com/alexisbeaulieu97/nexus/internal/ui/components"
	"github.com/alexisbeaulieu97/nexus/internal/ui/reveal"
)

func TestScriptMatchesGoModels(t *testing.T) {
	src, err := FS.ReadFile("site.js")
	require.NoError(t, err)
	js := string(src)

	require.Contains(t, js, `REVEAL_EASING = "`+reveal.Easing+`"`)
	require.Contains(t, js, "REVEAL_DURATION_MS = "+strconv.FormatInt(reveal.Duration.Milliseconds(), 10))
	require.Contains(t, js, "REVEAL_THRESHOLD = "+strconv.FormatFloat(reveal.Threshold, 'f', -1, 64))
	require.Contains(t, js, `NOTICE_SUCCESS = "`+contact.NoticeSuccess+`"`)
	require.Contains(t, js, `NOTICE_ERROR = "`+contact.NoticeError+`"`)
}

func TestScriptSpinnerMatchesLoadingButton(t *testing.T) {
	src, err := FS.ReadFile("site.js")
	require.NoError(t, err)
	js := string(src)

	var spinner strings.Builder
	require.NoError(t, components.Spinner(components.SizeLG).Render(&spinner))

	require.Contains(t, js, "SPINNER_HTML = '"+spinner.String()+"'")
	require.Contains(t, js, `SENDING_LABEL = "Sending..."`)
	require.Contains(t, js, "button.innerHTML = SPINNER_HTML")
}

func TestThemeDeclaresPalette(t *testing.T) {
	theme := Theme()
	for _, token := range []string{"primary", "secondary", "accent", "muted-foreground", "success", "error"} {
		require.Contains(t, theme, "--color-"+token+":")
	}
}
