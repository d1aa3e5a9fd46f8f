package layers

const (
	ModalMinWidth     = 44
	ModalMaxWidth     = 64
	ModalWidthDivisor = 2

	// ModalChromeHeight covers title, note, buttons, padding and border
	ModalChromeHeight = 12
)
