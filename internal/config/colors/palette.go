package colors

// palette holds the Kanagawa colors shared by the wave, dragon and lotus schemes
var palette = struct {
	// wave
	sumiInk1, sumiInk3, sumiInk4, sumiInk6 string
	waveBlue1, waveAqua2                   string
	winterBlue, winterYellow, winterRed    string
	oniViolet, crystalBlue, springGreen    string
	springBlue, sakuraPink, carpYellow     string
	surimiOrange, peachRed, samuraiRed     string
	roninYellow, autumnYellow, fujiGray    string
	fujiWhite, dragonBlue                  string

	// dragon
	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet, dragonBlue2      string
	dragonGreen2, dragonRed, dragonAqua, dragonYellow      string
	dragonPink, dragonOrange                               string

	// lotus
	lotusWhite0, lotusWhite3, lotusWhite4 string
	lotusInk1, lotusGray3, lotusViolet1   string
	lotusViolet4, lotusBlue1, lotusBlue2  string
	lotusBlue4, lotusAqua, lotusTeal3     string
	lotusGreen, lotusPink, lotusOrange2   string
	lotusYellow3, lotusYellow4, lotusRed  string
	lotusRed3, lotusRed4                  string
}{
	sumiInk1: "#181820", sumiInk3: "#1F1F28", sumiInk4: "#2A2A37", sumiInk6: "#54546D",
	waveBlue1: "#223249", waveAqua2: "#7AA89F",
	winterBlue: "#252535", winterYellow: "#49443C", winterRed: "#43242B",
	oniViolet: "#957FB8", crystalBlue: "#7E9CD8", springGreen: "#98BB6C",
	springBlue: "#7FB4CA", sakuraPink: "#D27E99", carpYellow: "#E6C384",
	surimiOrange: "#FFA066", peachRed: "#FF5D62", samuraiRed: "#E82424",
	roninYellow: "#FF9E3B", autumnYellow: "#DCA561", fujiGray: "#727169",
	fujiWhite: "#DCD7BA", dragonBlue: "#658594",

	dragonBlack1: "#12120F", dragonBlack3: "#181616", dragonBlack4: "#282727", dragonBlack6: "#625E5A",
	dragonWhite: "#C5C9C5", dragonAsh: "#737C73", dragonViolet: "#8992A7", dragonBlue2: "#8BA4B0",
	dragonGreen2: "#8A9A7B", dragonRed: "#C4746E", dragonAqua: "#8EA4A2", dragonYellow: "#C4B28A",
	dragonPink: "#A292A3", dragonOrange: "#B6927B",

	lotusWhite0: "#D5CEA3", lotusWhite3: "#F2ECBC", lotusWhite4: "#E7DBA0",
	lotusInk1: "#545464", lotusGray3: "#8A8980", lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83", lotusBlue1: "#C7D7E0", lotusBlue2: "#B5CBD2",
	lotusBlue4: "#4D699B", lotusAqua: "#597B75", lotusTeal3: "#5A7785",
	lotusGreen: "#6F894E", lotusPink: "#B35B79", lotusOrange2: "#E98A00",
	lotusYellow3: "#DE9800", lotusYellow4: "#F9D791", lotusRed: "#C84053",
	lotusRed3: "#E82424", lotusRed4: "#D9A594",
}
