package webui

import "go.uber.org/zap"

// ClassSelect writes every class change to the diagnostic log.
type ClassSelect struct {
	sel Element
	log *zap.Logger
}

func NewClassSelect(sel Element, log *zap.Logger) *ClassSelect {
	return &ClassSelect{sel: sel, log: log}
}

func (c *ClassSelect) Bind() {
	c.sel.AddEventListener("change", c.OnChange)
}

func (c *ClassSelect) OnChange(Event) {
	c.log.Info("Selected class", zap.String("class", c.sel.Value()))
}
