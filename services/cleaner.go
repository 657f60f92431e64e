package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"toy-sales-report/models"
	"toy-sales-report/utils"
)

// Cleaner validates a RawCatalog and turns it into a Catalog ready for
// aggregation. Any problem is reported as models.ErrMalformedInput; nothing
// is dropped silently, because a partial report is worse than none.
type Cleaner struct {
	logger   *utils.Logger
	validate *validator.Validate
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Cleaner{logger: logger, validate: v}
}

// Clean checks every required field and price, normalises text, and returns
// the catalog in source order.
func (c *Cleaner) Clean(raw *models.RawCatalog) (*models.Catalog, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: catalog is empty", models.ErrMalformedInput)
	}

	if err := c.validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrMalformedInput, describeValidation(err))
	}

	catalog := &models.Catalog{Products: make([]models.Product, 0, len(raw.Items))}
	for i, r := range raw.Items {
		p, err := c.cleanProduct(i, r)
		if err != nil {
			return nil, err
		}
		catalog.Products = append(catalog.Products, p)
	}

	c.logger.Info("[cleaner] Validated %d products", len(catalog.Products))
	return catalog, nil
}

func (c *Cleaner) cleanProduct(i int, r models.RawProduct) (models.Product, error) {
	title := normaliseText(*r.Title)
	if title == "" {
		return models.Product{}, fmt.Errorf("%w: items[%d].title is blank", models.ErrMalformedInput, i)
	}
	brand := normaliseText(*r.Brand)
	if brand == "" {
		return models.Product{}, fmt.Errorf("%w: items[%d].brand is blank", models.ErrMalformedInput, i)
	}
	if r.FullPrice.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: items[%d].full-price is negative (%s)",
			models.ErrMalformedInput, i, r.FullPrice.String())
	}

	product := models.Product{
		Title:     title,
		Brand:     brand,
		FullPrice: *r.FullPrice,
		Stock:     *r.Stock,
		Purchases: make([]models.Purchase, 0, len(r.Purchases)),
	}

	for _, pu := range r.Purchases {
		if pu.Price.IsNegative() {
			c.logger.Warn("[cleaner] %q has a negative purchase price %s", title, pu.Price.String())
		}
		product.Purchases = append(product.Purchases, models.Purchase{
			Price: *pu.Price,
			Date:  strings.TrimSpace(pu.Date),
		})
	}

	if len(product.Purchases) == 0 {
		c.logger.Debug("[cleaner] %q has no purchases", title)
	}
	return product, nil
}

// describeValidation flattens validator errors into "items[0].title is required; ...".
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, field+" must not be empty")
		case "gte":
			msgs = append(msgs, field+" must be >= "+fe.Param())
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
