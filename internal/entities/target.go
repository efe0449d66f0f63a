package entities

import "fmt"

type TargetKind int

const (
	TargetEquipment TargetKind = iota + 1
	TargetWorkCenter
)

// Target - цель заявки: строго либо оборудование, либо рабочий центр.
// Тип сконструирован так, что состояния "оба ID заданы" и "ни одного ID"
// невыразимы: получить Target можно только через конструкторы.
type Target struct {
	kind TargetKind
	id   uint64
}

func EquipmentTarget(id uint64) Target {
	return Target{kind: TargetEquipment, id: id}
}

func WorkCenterTarget(id uint64) Target {
	return Target{kind: TargetWorkCenter, id: id}
}

// NewTarget собирает Target из пары nullable-ID, как они приходят с фронта.
func NewTarget(equipmentID, workCenterID *uint64) (Target, error) {
	hasEq := equipmentID != nil && *equipmentID != 0
	hasWC := workCenterID != nil && *workCenterID != 0

	switch {
	case hasEq && hasWC:
		return Target{}, fmt.Errorf("укажите либо оборудование, либо рабочий центр, но не оба")
	case hasEq:
		return EquipmentTarget(*equipmentID), nil
	case hasWC:
		return WorkCenterTarget(*workCenterID), nil
	default:
		return Target{}, fmt.Errorf("не указана цель заявки: оборудование или рабочий центр")
	}
}

func (t Target) Kind() TargetKind { return t.kind }

func (t Target) IsEquipment() bool { return t.kind == TargetEquipment }

// EquipmentID возвращает ID оборудования или nil - в таком виде цель
// раскладывается по двум nullable-колонкам таблицы.
func (t Target) EquipmentID() *uint64 {
	if t.kind == TargetEquipment {
		id := t.id
		return &id
	}
	return nil
}

func (t Target) WorkCenterID() *uint64 {
	if t.kind == TargetWorkCenter {
		id := t.id
		return &id
	}
	return nil
}
