package dto_test

import (
	"strings"
	"testing"

	"praxis/shared/dto"
)

func TestFilter_GetWhereClause_DerivesArgNameFromField(t *testing.T) {
	filter := dto.Filter{
		Field:    "status",
		Value:    "pending",
		Operator: dto.FilterOperatorEq,
		Table:    "appointments",
	}

	where, args := filter.GetWhereClause()

	if where != "appointments.status = :status" {
		t.Errorf("unexpected where clause: %s", where)
	}

	if args["status"] != "pending" {
		t.Errorf("expected args[status] = pending, got %v", args["status"])
	}
}

func TestFilterGroup_GetWhereClause_SameFieldRange(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "appointment_date_from",
				Field:    "appointment_date",
				Value:    "2026-09-01",
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "appointments",
			},
			dto.Filter{
				ArgName:  "appointment_date_to",
				Field:    "appointment_date",
				Value:    "2026-09-14",
				Operator: dto.FilterOperatorLessEq,
				Table:    "appointments",
			},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.Contains(where, ":appointment_date_from") || !strings.Contains(where, ":appointment_date_to") {
		t.Errorf("expected both named bounds in where clause, got: %s", where)
	}

	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d: %v", len(args), args)
	}

	if args["appointment_date_from"] != "2026-09-01" {
		t.Errorf("lower bound lost: %v", args["appointment_date_from"])
	}

	if args["appointment_date_to"] != "2026-09-14" {
		t.Errorf("upper bound lost: %v", args["appointment_date_to"])
	}
}

func TestFilterGroup_GetWhereClause_RangeWithInFilter(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				ArgName:  "appointment_date_from",
				Field:    "appointment_date",
				Value:    "2026-09-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			dto.Filter{
				ArgName:  "appointment_date_to",
				Field:    "appointment_date",
				Value:    "2026-09-14",
				Operator: dto.FilterOperatorLessEq,
			},
			dto.Filter{
				Field:    "status",
				Value:    []string{"pending", "confirmed"},
				Operator: dto.FilterOperatorIn,
			},
		},
	}

	where, args := group.GetWhereClause()

	for _, arg := range []string{"appointment_date_from", "appointment_date_to", "status_0", "status_1"} {
		if _, ok := args[arg]; !ok {
			t.Errorf("missing arg %s in %v", arg, args)
		}
	}

	if strings.Count(where, "AND") != 2 {
		t.Errorf("expected three conditions joined by AND, got: %s", where)
	}

	if args["status_0"] != "pending" || args["status_1"] != "confirmed" {
		t.Errorf("IN filter args wrong: %v", args)
	}
}
