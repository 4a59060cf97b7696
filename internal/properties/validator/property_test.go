package validator

import (
	"errors"
	"rentals/pkg/logger"
	"rentals/pkg/model"
	"testing"
)

func validProperty(id string) model.Property {
	return model.Property{
		ID:       id,
		Title:    "Garden Cottage",
		Location: "5 Elm Street, Portland, OR",
		City:     "Portland",
		Price:    180,
		Type:     model.TypeHouse,
		Area:     700,
		Image:    "/images/cottage-1.jpg",
		Images:   []string{"/images/cottage-1.jpg"},
	}
}

func TestValidateCatalog(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(p []model.Property) []model.Property
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(p []model.Property) []model.Property { return p },
		},
		{
			name: "negative price",
			mutate: func(p []model.Property) []model.Property {
				p[0].Price = -1
				return p
			},
			wantFields: []string{"Price"},
		},
		{
			name: "unknown type",
			mutate: func(p []model.Property) []model.Property {
				p[0].Type = "castle"
				return p
			},
			wantFields: []string{"Type"},
		},
		{
			name: "no images and zero area",
			mutate: func(p []model.Property) []model.Property {
				p[1].Images = nil
				p[1].Area = 0
				return p
			},
			wantFields: []string{"Area", "Images"},
		},
		{
			name: "duplicate id",
			mutate: func(p []model.Property) []model.Property {
				p[1].ID = p[0].ID
				return p
			},
			wantFields: []string{"ID"},
		},
	}

	v := NewPropertyValidator(logger.Discard())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := tt.mutate([]model.Property{validProperty("a"), validProperty("b")})

			err := v.ValidateCatalog(catalog)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("ValidateCatalog() error = %v", err)
				}
				return
			}

			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("ValidateCatalog() error = %v, want ValidationErrors", err)
			}
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestValidateCatalog_EmptyIsValid(t *testing.T) {
	if err := NewPropertyValidator(logger.Discard()).ValidateCatalog(nil); err != nil {
		t.Errorf("ValidateCatalog(nil) error = %v", err)
	}
}
