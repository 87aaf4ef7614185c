package transform

import "github.com/gaurav-prasanna/sheetfolio/core"

// Settings overlays the fetched key/value rows on base and returns the result.
// Unrecognised keys are ignored; base is not modified.
func Settings(rows []core.Row, base core.Settings) core.Settings {
	out := base.Clone()
	for _, row := range rows {
		key := Pick(row, settingsKey...)
		if key == "" || !core.IsSettingKey(key) {
			continue
		}
		out[key] = Pick(row, settingsValue...)
	}
	return out
}
