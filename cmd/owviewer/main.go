package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"os"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Clovis5119/overwatch-stats/cmd/owviewer/uihelpers"
	"github.com/Clovis5119/overwatch-stats/src/heroes"
	"github.com/Clovis5119/overwatch-stats/src/owapi"
	"github.com/Clovis5119/overwatch-stats/src/profile"
	"github.com/Clovis5119/overwatch-stats/src/selection"
)

const fetchTimeout = 30 * time.Second

var platforms = []string{"pc", "xbl", "psn", "nintendo-switch"}
var regions = []string{"us", "eu", "asia"}

type uiState struct {
	app     fyne.App
	window  fyne.Window
	dataDir string

	store *profile.Store
	sel   *selection.State

	// widgets
	profileGroup *widget.CheckGroup
	heroGroup    *widget.CheckGroup
	roleSelect   *widget.Select
	modeRadio    *widget.RadioGroup
	presetSelect *widget.Select
	statSelect   *widget.Select
	runBtn       *widget.Button
	chartCanvas  *canvas.Image
	alertLabel   *widget.Label

	// guards against OnChanged callbacks re-entering while menus rebuild
	rebuilding bool

	// tags with a fetch goroutine in flight; read and written on the UI
	// thread only (fyne.Do)
	fetching map[string]bool

	// chart hints toggle
	showHints bool
}

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var dirFlag string
	var logLevel string
	flag.StringVar(&dirFlag, "dir", "", "Directory for player data (default: owstats_data next to the binary)")
	flag.StringVar(&logLevel, "loglevel", "info", "Log level: debug, info, warn or error")
	flag.Parse()
	if dirFlag == "" {
		dirFlag = "owstats_data"
	}
	profile.SetLogLevel(logLevel)

	a := app.NewWithID("com.owstats.viewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("Overwatch Stats Comparison")
	w.Resize(fyne.NewSize(1200, 820))

	client, err := owapi.NewClientFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	store, err := profile.NewStore(dirFlag, client)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open data dir %s: %v\n", dirFlag, err)
		os.Exit(1)
	}

	state := &uiState{
		app:      a,
		window:   w,
		dataDir:  dirFlag,
		store:    store,
		sel:      selection.New(),
		fetching: map[string]bool{},
	}
	state.showHints = a.Preferences().BoolWithFallback("showHints", true)

	// status line (fills the role of a log console at the bottom)
	state.alertLabel = widget.NewLabel("")
	state.alertLabel.Wrapping = fyne.TextWrapWord

	// profile panel
	state.profileGroup = widget.NewCheckGroup(store.Players(), nil)
	addBtn := widget.NewButton("Add…", func() { addProfileDialog(state) })
	removeBtn := widget.NewButton("Remove", func() { removeCheckedProfiles(state) })

	// hero panel: role filter above the hero list
	state.roleSelect = widget.NewSelect(heroes.Roles(), nil)
	state.roleSelect.Selected = heroes.RoleAll
	state.heroGroup = widget.NewCheckGroup(heroNames(heroes.RoleAll), nil)
	clearHeroesBtn := widget.NewButton("Clear", func() {
		state.heroGroup.SetSelected(nil)
	})

	// stat pickers
	state.modeRadio = widget.NewRadioGroup([]string{"Quick Play", "Competitive"}, nil)
	state.modeRadio.Horizontal = true
	state.modeRadio.Selected = "Quick Play"
	state.presetSelect = widget.NewSelect(nil, nil)
	state.presetSelect.PlaceHolder = "Category"
	state.statSelect = widget.NewSelect(nil, nil)
	state.statSelect.PlaceHolder = "Stat"

	hintsChk := widget.NewCheck("Hints", nil)
	hintsChk.SetChecked(state.showHints)

	state.runBtn = widget.NewButton("RUN", func() { drawChart(state) })
	state.runBtn.Importance = widget.HighImportance
	state.runBtn.Disable()

	// chart placeholder
	state.chartCanvas = canvas.NewImageFromImage(blank(800, 400))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(800, 400))

	// layout: selection column on the left, chart on the right
	profilesBox := container.NewVBox(
		widget.NewLabelWithStyle("Profiles", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.profileGroup,
		container.NewHBox(addBtn, removeBtn),
	)
	heroesBox := container.NewVBox(
		widget.NewLabelWithStyle("Heroes", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.roleSelect,
		container.NewVScroll(state.heroGroup),
		clearHeroesBtn,
	)
	statsBox := container.NewVBox(
		widget.NewLabelWithStyle("Stat", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		state.modeRadio,
		state.presetSelect,
		state.statSelect,
		hintsChk,
		state.runBtn,
	)
	left := container.NewVScroll(container.NewVBox(
		profilesBox, widget.NewSeparator(),
		heroesBox, widget.NewSeparator(),
		statsBox,
	))
	left.SetMinSize(fyne.NewSize(280, 600))

	content := container.NewBorder(nil, state.alertLabel, left, nil, state.chartCanvas)
	w.SetContent(content)

	// Redraw the chart on window resize so it scales with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() {
			savePrefs(state)
			close(done)
		})
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(func() {
							if state.sel.RunEnabled() {
								drawChart(state)
							}
						})
					}
				}
			}
		}()
	}

	// Wire callbacks now that every widget exists
	state.profileGroup.OnChanged = func(checked []string) { onProfilesChanged(state, checked) }
	state.heroGroup.OnChanged = func(checked []string) {
		if state.rebuilding {
			return
		}
		state.sel.SetHeroes(checked)
		refreshMenus(state)
	}
	state.roleSelect.OnChanged = func(role string) {
		// narrowing the visible list resets the hero selection, as the
		// hidden checks would otherwise linger invisibly
		state.heroGroup.Options = heroNames(role)
		state.heroGroup.SetSelected(nil)
		savePrefs(state)
	}
	state.modeRadio.OnChanged = func(v string) {
		if strings.EqualFold(v, "Competitive") {
			state.sel.SetMode(owapi.ModeCompetitive)
		} else {
			state.sel.SetMode(owapi.ModeQuickPlay)
		}
		savePrefs(state)
		refreshMenus(state)
	}
	state.presetSelect.OnChanged = func(v string) {
		if state.rebuilding || v == "" || v == state.sel.Preset() {
			return
		}
		if !state.sel.SetPreset(v) {
			fmt.Printf("[viewer] preset %q rejected\n", v)
			return
		}
		savePrefs(state)
		refreshMenus(state)
	}
	state.statSelect.OnChanged = func(v string) {
		if state.rebuilding || v == "" {
			return
		}
		if !state.sel.SelectStat(v) {
			fmt.Printf("[viewer] stat %q rejected\n", v)
			return
		}
		refreshMenus(state)
	}
	hintsChk.OnChanged = func(b bool) {
		state.showHints = b
		savePrefs(state)
		if state.sel.RunEnabled() {
			drawChart(state)
		}
	}

	buildMenus(state)
	loadPrefs(state, hintsChk)
	refreshMenus(state)
	setAlert(state, fmt.Sprintf("Loaded %d saved profiles from %s", len(store.Players()), dirFlag))

	w.ShowAndRun()
}

// heroNames returns the display names for the role filter.
func heroNames(role string) []string {
	hs := heroes.ByRole(role)
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.Name
	}
	return out
}

// onProfilesChanged syncs the check group with the selection, fetching
// payloads for newly checked profiles in the background.
func onProfilesChanged(state *uiState, checked []string) {
	if state.rebuilding {
		return
	}
	on := map[string]bool{}
	for _, tag := range checked {
		on[tag] = true
	}
	for _, tag := range state.sel.Profiles() {
		if !on[tag] {
			state.sel.RemoveProfile(tag)
		}
	}
	var missing []string
	for _, tag := range checked {
		if _, ok := state.sel.Payload(tag); ok {
			continue
		}
		if state.fetching[tag] {
			// a goroutine is already loading this tag; it will land via
			// fyne.Do when done
			continue
		}
		missing = append(missing, tag)
	}
	if len(missing) == 0 {
		refreshMenus(state)
		return
	}
	for _, tag := range missing {
		state.fetching[tag] = true
	}
	setAlert(state, fmt.Sprintf("Loading stats for %s…", strings.Join(missing, ", ")))
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		type result struct {
			tag     string
			payload *owapi.StatsPayload
			err     error
		}
		results := make([]result, 0, len(missing))
		for _, tag := range missing {
			p, err := state.store.GetOrRefresh(ctx, tag)
			results = append(results, result{tag: tag, payload: p, err: err})
		}
		fyne.Do(func() {
			for _, r := range results {
				delete(state.fetching, r.tag)
				if r.err != nil {
					profile.Errorf("load %s: %v", r.tag, r.err)
					setAlert(state, fmt.Sprintf("Could not load %s: %v", r.tag, r.err))
					uncheckProfile(state, r.tag)
					continue
				}
				// the box may have been unchecked while the fetch ran
				if containsTag(state.profileGroup.Selected, r.tag) {
					state.sel.AddProfile(r.tag, r.payload)
				}
			}
			refreshMenus(state)
		})
	}()
}

// containsTag reports whether a tag is still in a checked-tags slice.
func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// uncheckProfile removes a tag from the profile check group without
// re-triggering the fetch path.
func uncheckProfile(state *uiState, tag string) {
	state.rebuilding = true
	kept := make([]string, 0, len(state.profileGroup.Selected))
	for _, t := range state.profileGroup.Selected {
		if t != tag {
			kept = append(kept, t)
		}
	}
	state.profileGroup.SetSelected(kept)
	state.rebuilding = false
}

// refreshMenus rebuilds the preset and stat dropdowns from the current
// selection and gates the RUN button.
func refreshMenus(state *uiState) {
	state.rebuilding = true

	presets := state.sel.PresetOptions()
	state.presetSelect.Options = presets
	if len(presets) == 0 {
		state.presetSelect.Selected = ""
	} else {
		state.presetSelect.Selected = state.sel.Preset()
	}
	state.presetSelect.Refresh()

	stats := state.sel.StatOptions()
	state.statSelect.Options = stats
	state.statSelect.Selected = state.sel.Stat()
	state.statSelect.Refresh()

	if state.sel.RunEnabled() {
		state.runBtn.Enable()
	} else {
		state.runBtn.Disable()
	}
	state.rebuilding = false
}

// normalizeTag accepts either battletag form and stores the dashed one the
// API wants (Clovis#1467 -> Clovis-1467).
func normalizeTag(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "#", "-")
}

// addProfileDialog prompts for a battletag and registers it, fetching the
// initial stat payload before the profile appears in the list.
func addProfileDialog(state *uiState) {
	tagEntry := widget.NewEntry()
	tagEntry.SetPlaceHolder("Player#1234")
	platformSel := widget.NewSelect(platforms, nil)
	platformSel.Selected = "pc"
	regionSel := widget.NewSelect(regions, nil)
	regionSel.Selected = "us"
	items := []*widget.FormItem{
		widget.NewFormItem("Battletag", tagEntry),
		widget.NewFormItem("Platform", platformSel),
		widget.NewFormItem("Region", regionSel),
	}
	dialog.ShowForm("Add Profile", "Add", "Cancel", items, func(ok bool) {
		if !ok {
			return
		}
		tag := normalizeTag(tagEntry.Text)
		if tag == "" || !strings.Contains(tag, "-") {
			dialog.ShowInformation("Add Profile", "Enter a battletag like Player#1234.", state.window)
			return
		}
		setAlert(state, fmt.Sprintf("Fetching stats for %s…", tag))
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
			defer cancel()
			_, err := state.store.AddPlayer(ctx, tag, platformSel.Selected, regionSel.Selected)
			fyne.Do(func() {
				if err != nil {
					setAlert(state, fmt.Sprintf("Could not add %s: %v", tag, addFailureReason(err)))
					dialog.ShowError(fmt.Errorf("add %s: %w", tag, err), state.window)
					return
				}
				state.rebuilding = true
				state.profileGroup.Options = state.store.Players()
				state.profileGroup.Refresh()
				state.rebuilding = false
				setAlert(state, fmt.Sprintf("Added %s", tag))
			})
		}()
	}, state.window)
}

// addFailureReason maps common errors to a short human explanation.
func addFailureReason(err error) string {
	var apiErr *owapi.APIError
	switch {
	case errors.Is(err, profile.ErrPrivateProfile):
		return "that profile is private; stats are hidden"
	case errors.As(err, &apiErr):
		return apiErr.Error()
	default:
		return err.Error()
	}
}

// removeCheckedProfiles deletes the checked profiles from the store, the
// disk cache and the current selection.
func removeCheckedProfiles(state *uiState) {
	checked := state.profileGroup.Selected
	if len(checked) == 0 {
		setAlert(state, "Check the profiles to remove first.")
		return
	}
	for _, tag := range checked {
		if err := state.store.RemovePlayer(tag); err != nil {
			setAlert(state, fmt.Sprintf("Remove %s: %v", tag, err))
			continue
		}
		state.sel.RemoveProfile(tag)
		fmt.Printf("[viewer] removed profile %s\n", tag)
	}
	state.rebuilding = true
	state.profileGroup.Options = state.store.Players()
	state.profileGroup.SetSelected(nil)
	state.rebuilding = false
	refreshMenus(state)
}

// refreshCheckedProfiles forces a re-fetch for checked profiles by dropping
// their selection payloads and re-running the sync.
func refreshCheckedProfiles(state *uiState) {
	checked := state.profileGroup.Selected
	if len(checked) == 0 {
		setAlert(state, "Check the profiles to refresh first.")
		return
	}
	for _, tag := range checked {
		state.sel.RemoveProfile(tag)
	}
	onProfilesChanged(state, checked)
}

// menus and shortcuts
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Add Profile…", func() { addProfileDialog(state) }),
		fyne.NewMenuItem("Refresh Checked", func() { refreshCheckedProfiles(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state, "stats_chart.png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { addProfileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { addProfileDialog(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { refreshCheckedProfiles(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { refreshCheckedProfiles(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// drawChart renders the bar chart for the current selection into the canvas.
func drawChart(state *uiState) {
	img := renderStatChart(state)
	if img == nil {
		return
	}
	state.chartCanvas.Image = img
	cw, chh := chartSize(state)
	state.chartCanvas.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
	state.chartCanvas.Refresh()
}

// chartSize computes the chart size from the current window width so the
// bars get the available horizontal space.
func chartSize(state *uiState) (int, int) {
	if state == nil || state.window == nil || state.window.Canvas() == nil {
		return 900, 420
	}
	sz := state.window.Canvas().Size()
	// the selection column takes ~280px
	return uihelpers.ComputeChartDimensions(int(sz.Width) - 300)
}

func renderStatChart(state *uiState) image.Image {
	rows := state.sel.BuildTable()
	if len(rows) == 0 {
		return blank(800, 400)
	}
	stat := state.sel.Stat()
	cw, chh := chartSize(state)

	bars := make([]chart.Value, 0, len(rows))
	maxVal := 0.0
	lowTime := false
	for _, r := range rows {
		if r.Value > maxVal {
			maxVal = r.Value
		}
		if r.LowTime {
			lowTime = true
		}
		col := drawing.ColorFromHex(strings.TrimPrefix(r.Color, "#"))
		bars = append(bars, chart.Value{
			Value: r.Value,
			Label: uihelpers.BarLabel(r.Player, r.Hero, r.LowTime),
			Style: chart.Style{FillColor: col, StrokeColor: col.WithAlpha(200), StrokeWidth: 1},
		})
	}

	yMin, yMax := uihelpers.AxisRange(stat, maxVal)
	// keep ticks inside the axis range; the generator may round past the ends
	ticks := []chart.Tick{{Value: yMin, Label: uihelpers.FormatNumericTick(yMin)}}
	for _, v := range uihelpers.BuildNumericTicks(yMin, yMax, 6) {
		if v > yMin && v < yMax {
			ticks = append(ticks, chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)})
		}
	}
	ticks = append(ticks, chart.Tick{Value: yMax, Label: uihelpers.FormatNumericTick(yMax)})

	padBottom := 48
	if state.showHints && lowTime {
		padBottom += 18
	}
	modeLabel := "Quick Play"
	if state.sel.Mode() == owapi.ModeCompetitive {
		modeLabel = "Competitive"
	}
	ch := chart.BarChart{
		Title:      fmt.Sprintf("Overwatch Stats Comparison – %s (%s)", uihelpers.PrettyStatLabel(stat), modeLabel),
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 12, Bottom: padBottom}},
		Width:      cw,
		Height:     chh,
		BarWidth:   uihelpers.ComputeBarWidth(cw, len(bars)),
		BarSpacing: 18,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks: ticks,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fmt.Printf("[viewer] chart render error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		fmt.Printf("[viewer] chart decode error: %v; showing blank fallback\n", err)
		return blank(cw, chh)
	}
	if state.showHints && lowTime {
		return drawHint(img, "Hint: * marks under 3 hours playtime on that hero; take those bars with a grain of salt.")
	}
	return img
}

// drawHint draws a small hint string onto the image near the bottom-left.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	shadowCol := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	drShadow := &font.Drawer{Dst: rgba, Src: shadowCol, Face: face, Dot: fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)}}
	drShadow.DrawString(text)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// export PNG
func exportChartPNG(state *uiState, defaultName string) {
	if state == nil || state.window == nil || state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.chartCanvas.Image)
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// setAlert reports a status message to the bottom bar and the console.
func setAlert(state *uiState, msg string) {
	fmt.Printf("[viewer] %s\n", msg)
	if state.alertLabel != nil {
		state.alertLabel.SetText(time.Now().Format("15:04:05") + "  " + msg)
	}
}

// prefs
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	prefs.SetString("mode", state.sel.Mode())
	prefs.SetString("role", state.roleSelect.Selected)
	prefs.SetBool("showHints", state.showHints)
	prefs.SetString("dataDir", state.dataDir)
}

func loadPrefs(state *uiState, hintsChk *widget.Check) {
	if state == nil || state.app == nil {
		return
	}
	prefs := state.app.Preferences()
	switch prefs.StringWithFallback("mode", state.sel.Mode()) {
	case owapi.ModeCompetitive:
		state.sel.SetMode(owapi.ModeCompetitive)
		state.modeRadio.Selected = "Competitive"
		state.modeRadio.Refresh()
	default:
		state.sel.SetMode(owapi.ModeQuickPlay)
	}
	if role := prefs.StringWithFallback("role", heroes.RoleAll); role != heroes.RoleAll {
		for _, r := range heroes.Roles() {
			if r == role {
				state.roleSelect.Selected = role
				state.heroGroup.Options = heroNames(role)
				state.roleSelect.Refresh()
				state.heroGroup.Refresh()
				break
			}
		}
	}
	state.showHints = prefs.BoolWithFallback("showHints", state.showHints)
	if hintsChk != nil {
		hintsChk.SetChecked(state.showHints)
	}
}
