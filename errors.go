package streetnames

import "github.com/pkg/errors"

var (
	ErrUnknownFileExtension = errors.New("file extension is not handled")
	ErrNoRoute              = errors.New("no route between given nodes")
	ErrUnknownGeomFormat    = errors.New("unknown geometry format")
	ErrUnknownNode          = errors.New("node is not a part of the network")
)
