package colors

// ClientColors returns the (badge background, badge foreground) pair for a
// connected client. Ids map to a fixed palette slot so a client keeps its
// color for the whole run; ids outside 1-10 have no color.
func ClientColors(clientID int, p Palette) (PaletteColor, PaletteColor, bool) {
	var bg PaletteColor
	switch clientID {
	case 1:
		bg = p.Magenta
	case 2:
		bg = p.Blue
	case 3:
		bg = p.Purple
	case 4:
		bg = p.Yellow
	case 5:
		bg = p.Cyan
	case 6:
		bg = p.Gold
	case 7:
		bg = p.Red
	case 8:
		bg = p.Silver
	case 9:
		bg = p.Pink
	case 10:
		bg = p.Brown
	default:
		return PaletteColor{}, PaletteColor{}, false
	}
	return bg, TextColorFor(bg, p), true
}
