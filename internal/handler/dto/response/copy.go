package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView maps a query view onto its response shape field by field.
func copyView(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic("response mapping: " + err.Error())
	}
}
