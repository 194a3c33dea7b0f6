package model

import (
	"time"

	"eventbook/shared"
	"eventbook/shared/constant"
	gDto "eventbook/shared/dto"
)

const argExcludeID = "exclude_id"

func FilterByID(id int64) gDto.FilterGroup {
	return shared.FilterByID(id, FieldID, TableName)
}

// FilterByEventDate matches bookings on the given calendar date.
func FilterByEventDate(date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    FieldEventDate,
				Value:    date.Format(constant.DateOnlyFormat),
				Operator: gDto.FilterOperatorEq,
				Table:    TableName,
			},
		},
	}
}

// FilterByEventDateExcluding matches bookings on date other than the one identified by id.
func FilterByEventDateExcluding(date time.Time, id int64) gDto.FilterGroup {
	filter := FilterByEventDate(date)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  argExcludeID,
		Field:    FieldID,
		Value:    id,
		Operator: gDto.FilterOperatorNotEq,
		Table:    TableName,
	})

	return filter
}

// OrderByEventDate lists bookings ascending by date.
func OrderByEventDate() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  FieldEventDate,
		SortDir: gDto.SortDirAsc,
	}
}
