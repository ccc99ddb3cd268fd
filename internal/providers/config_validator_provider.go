package providers

import (
	"fmt"
	"solobill/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if v.Validate() {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", v.Errors.One())
}
