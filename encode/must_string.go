package encode

import (
	"github.com/signadot/eon-format/go-eon/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	res, err := EncodeString(node, opts...)
	if err != nil {
		panic(err)
	}
	return res
}
