package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:    "#5D06E9",
		AccentAlt: "#852DFE",

		// Surfaces
		Background:     "#1C1C1C",
		CardBackground: "#262626",
		Border:         "#585858",
		SelectedBorder: "#852DFE",

		// Text
		Title:    "#FFFFFF",
		Normal:   "#D0D0D0",
		Subtle:   "#A0A0A0",
		Muted:    "#626262",
		Disabled: "#4E4E4E",

		Highlight: "#FFD900",
		ButtonFg:  "#FFFFFF",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:    "#FFFFFF",
		AccentAlt: "#D0D0D0",

		Background:     "#121212",
		CardBackground: "#1C1C1C",
		Border:         "#585858",
		SelectedBorder: "#FFFFFF",

		Title:    "#FFFFFF",
		Normal:   "#D0D0D0",
		Subtle:   "#8A8A8A",
		Muted:    "#585858",
		Disabled: "#3A3A3A",

		Highlight: "#FFFFFF",
		ButtonFg:  "#121212",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}

func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:    palette.oniViolet,
		AccentAlt: palette.springViolet1,

		Background:     palette.sumiInk1,
		CardBackground: palette.sumiInk3,
		Border:         palette.sumiInk6,
		SelectedBorder: palette.waveAqua2,

		Title:    palette.crystalBlue,
		Normal:   palette.fujiWhite,
		Subtle:   palette.oldWhite,
		Muted:    palette.fujiGray,
		Disabled: palette.sumiInk4,

		Highlight: palette.carpYellow,
		ButtonFg:  palette.sumiInk1,

		InfoFg:  palette.springBlue,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.samuraiRed,
		ErrorBg: palette.winterRed,
	}
}

func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent:    palette.dragonViolet,
		AccentAlt: palette.dragonBlue2,

		Background:     palette.dragonBlack1,
		CardBackground: palette.dragonBlack3,
		Border:         palette.dragonBlack6,
		SelectedBorder: palette.dragonAqua,

		Title:    palette.dragonBlue2,
		Normal:   palette.dragonWhite,
		Subtle:   palette.dragonGray3,
		Muted:    palette.dragonAsh,
		Disabled: palette.dragonBlack4,

		Highlight: palette.dragonYellow,
		ButtonFg:  palette.dragonBlack1,

		InfoFg:  palette.dragonBlue2,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.dragonRed,
		ErrorBg: palette.winterRed,
	}
}

func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent:    palette.lotusViolet4,
		AccentAlt: palette.lotusBlue4,

		Background:     palette.lotusWhite3,
		CardBackground: palette.lotusWhite0,
		Border:         palette.lotusViolet1,
		SelectedBorder: palette.lotusAqua,

		Title:    palette.lotusBlue4,
		Normal:   palette.lotusInk1,
		Subtle:   palette.lotusTeal3,
		Muted:    palette.lotusGray3,
		Disabled: palette.lotusViolet1,

		Highlight: palette.lotusOrange2,
		ButtonFg:  palette.lotusWhite3,

		InfoFg:  palette.lotusTeal3,
		InfoBg:  palette.lotusBlue2,
		ErrorFg: palette.lotusRed3,
		ErrorBg: palette.lotusRed4,
	}
}
