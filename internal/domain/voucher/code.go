package voucher

import (
	"strconv"
	"strings"
	"time"

	"activity-booking/internal/pkg/randstr"
)

const (
	codePrefix  = "SCP"
	codeRandLen = 4
)

type CodeGenerator interface {
	Generate(now time.Time) Code
}

// RandomCodeGenerator yields codes shaped SCP-{base36 unix millis}-{4 random [A-Z0-9]}.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (RandomCodeGenerator) Generate(now time.Time) Code {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return Code(codePrefix + "-" + stamp + "-" + randstr.String(randstr.UpperDigits, codeRandLen))
}
