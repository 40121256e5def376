package layout

// Correction rescales the alignment references of a glyph whose font
// metrics misdescribe its ink. Line ratios are relative to the glyph's
// height and Width and DX to its width; DY is relative to its height.
type Correction struct {
	Ceiling, Waist, Floor, Basement float64
	Width                           float64
	DX, DY                          float64
}

var integral = Correction{
	Ceiling: 0.05, Waist: 0.5, Floor: 0.9, Basement: 1,
	Width: 1.2, DX: 0.1,
}

var bigOperator = Correction{
	Ceiling: 0.2, Waist: 0.5, Floor: 0.78, Basement: 0.85,
	Width: 1,
}

var corrections = map[string]Correction{
	"int":    integral,
	"iint":   integral,
	"iiint":  integral,
	"oint":   integral,
	"oiint":  integral,
	"oiiint": integral,
	"sum":    bigOperator,
	"prod":   bigOperator,
	"arrow": {
		Ceiling: 0.3, Waist: 0.55, Floor: 0.8, Basement: 1,
		Width: 1,
	},
}

// LookupCorrection returns the correction registered under key.
func LookupCorrection(key string) (Correction, bool) {
	c, ok := corrections[key]
	return c, ok
}

// Correct wraps child and replaces its alignment references using the
// correction named key. An unknown key returns child unchanged.
func Correct(key string, child *Box) *Box {
	c, ok := corrections[key]
	if !ok || child == nil {
		return child
	}
	w, h := float64(child.Width), float64(child.Height)
	lines := Lines{
		Ceiling:  px(c.Ceiling * h),
		Waist:    px(c.Waist * h),
		Floor:    px(c.Floor * h),
		Basement: px(c.Basement * h),
	}
	return &Box{
		Kind:     KindCorrected,
		Width:    px(c.Width * w),
		Height:   lines.Basement,
		Lines:    lines,
		FontSize: child.FontSize,
		Children: []Child{{X: px(c.DX * w), Y: px(c.DY * h), Box: child}},
	}
}
