package colors

// palette holds the Kanagawa colors shared by the dragon, wave and lotus presets
var palette = struct {
	// Wave
	fujiWhite, fujiGray, oniViolet, crystalBlue, springGreen string
	peachRed, samuraiRed, roninYellow                        string
	winterBlue, winterYellow, winterRed                      string

	// Dragon
	dragonWhite, dragonViolet, dragonBlue2, dragonGreen2 string
	dragonRed, dragonAsh, dragonYellow, dragonBlack3     string

	// Lotus
	lotusInk1, lotusViolet4, lotusBlue4, lotusGreen, lotusRed string
	lotusGray3, lotusOrange, lotusWhite3                      string
}{
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	roninYellow:  "#FF9E3B",
	winterBlue:   "#252535",
	winterYellow: "#49443C",
	winterRed:    "#43242B",

	dragonWhite:  "#C5C9C5",
	dragonViolet: "#8992A7",
	dragonBlue2:  "#8BA4B0",
	dragonGreen2: "#87A987",
	dragonRed:    "#C4746E",
	dragonAsh:    "#737C73",
	dragonYellow: "#C4B28A",
	dragonBlack3: "#181616",

	lotusInk1:    "#545464",
	lotusViolet4: "#624C83",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusGray3:   "#8A8980",
	lotusOrange:  "#CC6D00",
	lotusWhite3:  "#F2ECBC",
}
