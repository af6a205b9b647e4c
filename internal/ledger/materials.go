package ledger

import (
	"strconv"
	"strings"

	"github.com/mamadbah2/buildtrack/internal/domain/models"
)

// AddMaterial validates the form and appends a new material.
func (l *Ledger) AddMaterial(form models.MaterialForm) (models.Material, error) {
	mat, err := materialFromForm(form)
	if err != nil {
		return models.Material{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	mat.ID = nextID(l.materials, func(m models.Material) int { return m.ID })
	l.materials = append(l.materials, mat)
	return mat, nil
}

// EditMaterial validates the form and replaces the material's fields.
func (l *Ledger) EditMaterial(id int, form models.MaterialForm) (models.Material, error) {
	mat, err := materialFromForm(form)
	if err != nil {
		return models.Material{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.materialIndex(id)
	if i < 0 {
		return models.Material{}, ErrNotFound
	}
	mat.ID = id
	l.materials[i] = mat
	return mat, nil
}

// DeleteMaterial removes the material if present. Usage entries keep their snapshot name.
func (l *Ledger) DeleteMaterial(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.materialIndex(id); i >= 0 {
		l.materials = append(l.materials[:i], l.materials[i+1:]...)
	}
}

// RecordUsage draws quantity from a material's stock and appends a usage entry.
// It returns the appended entry and the material after the decrement.
func (l *Ledger) RecordUsage(form models.UsageForm) (models.MaterialUsage, models.Material, error) {
	rawID, ok := required(form.MaterialID.String())
	if !ok {
		return models.MaterialUsage{}, models.Material{}, missing("materialId", msgUsageRequired)
	}
	materialID, err := strconv.Atoi(rawID)
	if err != nil {
		return models.MaterialUsage{}, models.Material{}, &ValidationError{Field: "materialId", Message: "materialId must be an integer"}
	}
	rawQty, ok := required(form.Quantity.String())
	if !ok {
		return models.MaterialUsage{}, models.Material{}, missing("quantity", msgUsageRequired)
	}
	quantity, err := strconv.ParseFloat(rawQty, 64)
	if err != nil || !finite(quantity) || quantity <= 0 {
		return models.MaterialUsage{}, models.Material{}, &ValidationError{Field: "quantity", Message: "quantity must be a positive number"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.materialIndex(materialID)
	if i < 0 {
		return models.MaterialUsage{}, models.Material{}, ErrNotFound
	}

	mat := l.materials[i]
	if quantity > mat.Current {
		return models.MaterialUsage{}, models.Material{}, &InsufficientStockError{
			MaterialID: materialID,
			Requested:  quantity,
			Available:  mat.Current,
		}
	}

	l.materials[i].Current = mat.Current - quantity

	entry := models.MaterialUsage{
		ID:           nextID(l.usage, func(u models.MaterialUsage) int { return u.ID }),
		MaterialID:   materialID,
		MaterialName: mat.Name,
		Quantity:     quantity,
		Date:         models.DateKey(l.Today()),
		Notes:        strings.TrimSpace(form.Notes),
	}
	l.usage = append(l.usage, entry)

	return entry, l.materials[i], nil
}

func (l *Ledger) materialIndex(id int) int {
	for i, m := range l.materials {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func materialFromForm(form models.MaterialForm) (models.Material, error) {
	name, ok := required(form.Name)
	if !ok {
		return models.Material{}, missing("name", msgRequiredFields)
	}
	unit, ok := required(form.Unit)
	if !ok {
		return models.Material{}, missing("unit", msgRequiredFields)
	}
	current, err := parseNumber("current", form.Current.String())
	if err != nil {
		return models.Material{}, err
	}
	if current < 0 {
		return models.Material{}, &ValidationError{Field: "current", Message: "current stock must not be negative"}
	}
	minimum, err := parseNumber("minimum", form.Minimum.String())
	if err != nil {
		return models.Material{}, err
	}
	cost, err := parseMoney("cost", form.Cost.String())
	if err != nil {
		return models.Material{}, err
	}

	return models.Material{
		Name:    name,
		Unit:    unit,
		Current: current,
		Minimum: minimum,
		Cost:    cost,
	}, nil
}
