package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"crashbreak/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// formValues is the raw state of the preferences form.
type formValues struct {
	customEnabled   bool
	customMinutes   string
	scheduleEnabled bool
	weekdays        map[model.Weekday]bool
	startHour       string
	endHour         string
	lunchEnabled    bool
	lunchHour       string
	lunchMinute     string
	suppress        bool
	launchAtLogin   bool
}

func valuesFrom(settings model.Settings) formValues {
	values := formValues{
		customEnabled:   settings.CustomIntervalEnabled,
		customMinutes:   strconv.Itoa(settings.CustomMinutes),
		scheduleEnabled: settings.Schedule.Enabled,
		weekdays:        make(map[model.Weekday]bool),
		startHour:       twoDigits(settings.Schedule.StartHour),
		endHour:         twoDigits(settings.Schedule.EndHour),
		lunchEnabled:    settings.Lunch.Enabled,
		lunchHour:       twoDigits(settings.Lunch.Hour),
		lunchMinute:     twoDigits(settings.Lunch.Minute),
		suppress:        settings.SuppressDuringScreenShare,
		launchAtLogin:   settings.LaunchAtLogin,
	}
	for _, day := range settings.Schedule.Weekdays {
		values.weekdays[day] = true
	}
	return values
}

// apply writes the form into settings. Out-of-range numbers are clamped;
// text that is not a number leaves the current value untouched.
func (values formValues) apply(settings *model.Settings) {
	settings.CustomIntervalEnabled = values.customEnabled
	if minutes, ok := parseInt(values.customMinutes); ok {
		settings.SetCustomMinutes(minutes)
	}

	settings.Schedule.Enabled = values.scheduleEnabled
	weekdays := make([]model.Weekday, 0, len(values.weekdays))
	for _, day := range model.AllWeekdays() {
		if values.weekdays[day] {
			weekdays = append(weekdays, day)
		}
	}
	settings.Schedule.Weekdays = weekdays
	if hour, ok := parseInt(values.startHour); ok {
		settings.Schedule.StartHour = hour
	}
	if hour, ok := parseInt(values.endHour); ok {
		settings.Schedule.EndHour = hour
	}

	settings.Lunch.Enabled = values.lunchEnabled
	if hour, ok := parseInt(values.lunchHour); ok {
		settings.Lunch.Hour = hour
	}
	if minute, ok := parseInt(values.lunchMinute); ok {
		settings.Lunch.Minute = minute
	}

	settings.SuppressDuringScreenShare = values.suppress
	settings.LaunchAtLogin = values.launchAtLogin
	settings.Normalize()
}

// Window handles the preferences UI. Saving writes through the store.
type Window struct {
	window   fyne.Window
	store    *Store
	custom   *widget.Check
	minutes  *widget.Entry
	schedule *widget.Check
	weekdays map[model.Weekday]*widget.Check
	start    *widget.Select
	end      *widget.Select
	lunch    *widget.Check
	lunchH   *widget.Select
	lunchM   *widget.Select
	suppress *widget.Check
	login    *widget.Check
}

// New creates a hidden preferences window bound to store.
func New(app fyne.App, store *Store) *Window {
	window := app.NewWindow("CrashBreak Preferences")
	hours := numberOptions(24)
	minutes := numberOptions(60)

	prefs := &Window{
		window:   window,
		store:    store,
		custom:   widget.NewCheck("Use a custom interval", nil),
		minutes:  widget.NewEntry(),
		schedule: widget.NewCheck("Only remind on a schedule", nil),
		weekdays: make(map[model.Weekday]*widget.Check),
		start:    widget.NewSelect(hours, nil),
		end:      widget.NewSelect(hours, nil),
		lunch:    widget.NewCheck("Lunch reminder", nil),
		lunchH:   widget.NewSelect(hours, nil),
		lunchM:   widget.NewSelect(minutes, nil),
		suppress: widget.NewCheck("Pause during calls and screen sharing", nil),
		login:    widget.NewCheck("Launch at login", nil),
	}
	prefs.minutes.SetPlaceHolder(fmt.Sprintf("%d-%d", model.MinCustomMinutes, model.MaxCustomMinutes))

	days := container.NewHBox()
	for _, day := range model.AllWeekdays() {
		check := widget.NewCheck(day.ShortName(), nil)
		prefs.weekdays[day] = check
		days.Add(check)
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Interval", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.custom,
		container.NewHBox(widget.NewLabel("Remind every"), prefs.minutes, widget.NewLabel("min")),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Schedule", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.schedule,
		days,
		container.NewHBox(widget.NewLabel("From"), prefs.start, widget.NewLabel("until"), prefs.end),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Lunch", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.lunch,
		container.NewHBox(widget.NewLabel("At"), prefs.lunchH, widget.NewLabel(":"), prefs.lunchM),
		widget.NewSeparator(),
		prefs.suppress,
		prefs.login,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(460, 480))
	window.SetCloseIntercept(window.Hide)
	return prefs
}

// Show reloads the current settings and displays the window.
func (prefs *Window) Show() {
	prefs.load(valuesFrom(prefs.store.Settings()))
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) load(values formValues) {
	prefs.custom.SetChecked(values.customEnabled)
	prefs.minutes.SetText(values.customMinutes)
	prefs.schedule.SetChecked(values.scheduleEnabled)
	for day, check := range prefs.weekdays {
		check.SetChecked(values.weekdays[day])
	}
	prefs.start.SetSelected(values.startHour)
	prefs.end.SetSelected(values.endHour)
	prefs.lunch.SetChecked(values.lunchEnabled)
	prefs.lunchH.SetSelected(values.lunchHour)
	prefs.lunchM.SetSelected(values.lunchMinute)
	prefs.suppress.SetChecked(values.suppress)
	prefs.login.SetChecked(values.launchAtLogin)
}

func (prefs *Window) collect() formValues {
	values := formValues{
		customEnabled:   prefs.custom.Checked,
		customMinutes:   prefs.minutes.Text,
		scheduleEnabled: prefs.schedule.Checked,
		weekdays:        make(map[model.Weekday]bool),
		startHour:       prefs.start.Selected,
		endHour:         prefs.end.Selected,
		lunchEnabled:    prefs.lunch.Checked,
		lunchHour:       prefs.lunchH.Selected,
		lunchMinute:     prefs.lunchM.Selected,
		suppress:        prefs.suppress.Checked,
		launchAtLogin:   prefs.login.Checked,
	}
	for day, check := range prefs.weekdays {
		values.weekdays[day] = check.Checked
	}
	return values
}

func (prefs *Window) handleSave() {
	values := prefs.collect()
	if err := prefs.store.Update(values.apply); err != nil {
		dialog.ShowError(fmt.Errorf("settings were applied but could not be saved: %w", err), prefs.window)
		return
	}
	prefs.window.Hide()
}

func numberOptions(count int) []string {
	options := make([]string, count)
	for i := range options {
		options[i] = twoDigits(i)
	}
	return options
}

func twoDigits(value int) string {
	return fmt.Sprintf("%02d", value)
}

func parseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}
