package typeset

import (
	"reflect"
	"strings"
	"sync"
)

var (
	positionCache sync.Map // reflect.Type -> positionEntry
	mappingCache  sync.Map // mappingKey -> mappingEntry
)

type positionEntry struct {
	byType map[reflect.Type]int
	err    error
}

type mappingKey struct {
	from, to reflect.Type
}

type mappingEntry struct {
	table []int
	err   error
}

// Positions resolves the position of every member of set, keyed by member
// type. The set is validated for duplicates the first time a key is seen;
// both the table and a validation failure are cached under key.
func Positions(key reflect.Type, set []reflect.Type) (map[reflect.Type]int, error) {
	if e, ok := positionCache.Load(key); ok {
		entry := e.(positionEntry)
		return entry.byType, entry.err
	}

	byType := make(map[reflect.Type]int, len(set))
	var err error
	for i, m := range set {
		if first, dup := byType[m]; dup {
			err = &DuplicateError{Member: m, Set: set, First: first, Second: i}
			byType = nil
			break
		}
		byType[m] = i
	}

	e, _ := positionCache.LoadOrStore(key, positionEntry{byType: byType, err: err})
	entry := e.(positionEntry)
	return entry.byType, entry.err
}

// IndexOf resolves the position of member within set. A member absent from
// the set yields a NotMemberError; a set naming the same type twice yields a
// DuplicateError.
func IndexOf(key reflect.Type, set []reflect.Type, member reflect.Type) (int, error) {
	byType, err := Positions(key, set)
	if err != nil {
		return 0, err
	}

	idx, ok := byType[member]
	if !ok {
		return 0, &NotMemberError{Member: member, Set: set}
	}
	return idx, nil
}

// Mapping resolves the index remap table embedding from into to: table[i] is
// the position in to of from's i-th member. The relation is decided once per
// (fromKey, toKey) pair and cached; a member of from that to lacks yields a
// NotSubsetError. Injectivity follows from both sets being duplicate-free.
func Mapping(fromKey reflect.Type, from []reflect.Type, toKey reflect.Type, to []reflect.Type) ([]int, error) {
	key := mappingKey{from: fromKey, to: toKey}
	if e, ok := mappingCache.Load(key); ok {
		entry := e.(mappingEntry)
		return entry.table, entry.err
	}

	table, err := buildMapping(fromKey, from, toKey, to)

	e, _ := mappingCache.LoadOrStore(key, mappingEntry{table: table, err: err})
	entry := e.(mappingEntry)
	return entry.table, entry.err
}

func buildMapping(fromKey reflect.Type, from []reflect.Type, toKey reflect.Type, to []reflect.Type) ([]int, error) {
	if _, err := Positions(fromKey, from); err != nil {
		return nil, err
	}
	toPositions, err := Positions(toKey, to)
	if err != nil {
		return nil, err
	}

	table := make([]int, len(from))
	for i, m := range from {
		idx, ok := toPositions[m]
		if !ok {
			return nil, &NotSubsetError{Missing: m, From: from, To: to}
		}
		table[i] = idx
	}
	return table, nil
}

// Subset reports whether every member of from occurs in to.
func Subset(fromKey reflect.Type, from []reflect.Type, toKey reflect.Type, to []reflect.Type) bool {
	_, err := Mapping(fromKey, from, toKey, to)
	return err == nil
}

// Format renders a member set as "(T0, T1, ...)" for diagnostics.
func Format(set []reflect.Type) string {
	names := make([]string, len(set))
	for i, m := range set {
		names[i] = m.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}
