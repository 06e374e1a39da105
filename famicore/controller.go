package famicore

// Standard controller button order on the serial line.
const (
	ButtonA = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller models the strobe latch plus 8-bit serial shift register of a
// standard controller. While strobe bit 0 is held high the shift index is
// pinned to button A; reads past the eighth return 1 on real pads, which the
// bus composes with the open-bus upper bits.
type Controller struct {
	buttons [8]bool
	index   byte
	strobe  byte
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) SetButtons(buttons [8]bool) {
	c.buttons = buttons
}

func (c *Controller) Read() byte {
	value := byte(1)
	if c.index < 8 {
		value = 0
		if c.buttons[c.index] {
			value = 1
		}
	}
	c.index++
	if c.strobe&1 == 1 {
		c.index = 0
	}
	return value
}

func (c *Controller) Write(value byte) {
	c.strobe = value
	if c.strobe&1 == 1 {
		c.index = 0
	}
}
