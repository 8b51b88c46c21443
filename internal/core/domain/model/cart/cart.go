package cart

import (
	"meddelivery/internal/core/domain/model/kernel"
	"meddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Cart is the ordered set of lines of one shopper session. It is not safe for
// concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// RestoreCart rebuilds a cart from persisted lines. Duplicate medicines are
// rejected.
func RestoreCart(lines []Line) (*Cart, error) {
	c := New()
	for _, l := range lines {
		if c.indexOf(l.medicineID) >= 0 {
			return nil, errs.NewValueIsInvalidError("lines: duplicate medicine " + l.medicineID.String())
		}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

// AddItem increments the line for the result's medicine or appends a new line
// with quantity one.
func (c *Cart) AddItem(result SearchResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(result.Medicine.ID); i >= 0 {
		c.lines[i].quantity++
		return nil
	}

	c.lines = append(c.lines, lineFromSearchResult(result))
	return nil
}

// SetQuantity overwrites a line's quantity. A quantity below one removes the
// line. Setting a positive quantity on an absent medicine is an error.
func (c *Cart) SetQuantity(medicineID kernel.UUID, quantity int) error {
	if quantity < 1 {
		c.RemoveItem(medicineID)
		return nil
	}

	i := c.indexOf(medicineID)
	if i < 0 {
		return errs.NewObjectNotFoundError("medicineID", medicineID)
	}
	c.lines[i].quantity = quantity
	return nil
}

// RemoveItem drops the medicine's line if present.
func (c *Cart) RemoveItem(medicineID kernel.UUID) {
	if i := c.indexOf(medicineID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Line(medicineID kernel.UUID) (Line, bool) {
	if i := c.indexOf(medicineID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	return &Cart{lines: c.Lines()}
}

// GroupByPharmacy partitions the lines by pharmacy. Groups appear in the order
// their pharmacy was first added and keep their lines in insertion order.
func (c *Cart) GroupByPharmacy() []PharmacyGroup {
	groups := make([]PharmacyGroup, 0)
	index := make(map[kernel.UUID]int)

	for _, l := range c.lines {
		i, ok := index[l.pharmacyID]
		if !ok {
			i = len(groups)
			index[l.pharmacyID] = i
			groups = append(groups, PharmacyGroup{
				PharmacyID:   l.pharmacyID,
				PharmacyName: l.pharmacyName,
			})
		}
		groups[i].Lines = append(groups[i].Lines, l)
	}

	return groups
}

func (c *Cart) indexOf(medicineID kernel.UUID) int {
	for i, l := range c.lines {
		if l.medicineID.IsEqual(medicineID) {
			return i
		}
	}
	return -1
}

// PharmacyGroup is the part of a cart one pharmacy fulfils; it becomes one order.
type PharmacyGroup struct {
	PharmacyID   kernel.UUID
	PharmacyName string
	Lines        []Line
}

func (g PharmacyGroup) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range g.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
