package colors

// kanagawa colors used by the wave, dragon and lotus presets
var palette = struct {
	sumiInk1, sumiInk3, sumiInk4, sumiInk6 string
	waveBlue1, winterBlue, winterRed       string
	fujiWhite, fujiGray, oldWhite          string
	oniViolet, crystalBlue, springViolet1  string
	waveAqua2, carpYellow, samuraiRed      string
	peachRed, springBlue                   string

	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonGray3                    string
	dragonViolet, dragonBlue2, dragonAqua, dragonYellow    string
	dragonRed                                              string

	lotusInk1, lotusGray3, lotusWhite0, lotusWhite3 string
	lotusViolet1, lotusViolet4, lotusBlue2          string
	lotusBlue4, lotusTeal3, lotusAqua, lotusYellow4 string
	lotusRed3, lotusRed4, lotusOrange2              string
}{
	sumiInk1:      "#181820",
	sumiInk3:      "#1F1F28",
	sumiInk4:      "#2A2A37",
	sumiInk6:      "#54546D",
	waveBlue1:     "#223249",
	winterBlue:    "#252535",
	winterRed:     "#43242B",
	fujiWhite:     "#DCD7BA",
	fujiGray:      "#727169",
	oldWhite:      "#C8C093",
	oniViolet:     "#957FB8",
	crystalBlue:   "#7E9CD8",
	springViolet1: "#938AA9",
	waveAqua2:     "#7AA89F",
	carpYellow:    "#E6C384",
	samuraiRed:    "#E82424",
	peachRed:      "#FF5D62",
	springBlue:    "#7FB4CA",

	dragonBlack1: "#12120F",
	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonGray3:  "#7A8382",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonAqua:   "#8EA4A2",
	dragonYellow: "#C4B28A",
	dragonRed:    "#C4746E",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusWhite0:  "#D5CEA3",
	lotusWhite3:  "#F2ECBC",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue2:   "#B5CBD2",
	lotusBlue4:   "#4D699B",
	lotusTeal3:   "#5A7785",
	lotusAqua:    "#597B75",
	lotusYellow4: "#F9D791",
	lotusRed3:    "#E82424",
	lotusRed4:    "#D9A594",
	lotusOrange2: "#E98A00",
}
