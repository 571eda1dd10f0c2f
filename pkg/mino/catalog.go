package mino

import "github.com/pkg/errors"

// Definition is an immutable catalog entry.
type Definition struct {
	Name  string
	Color Block
	Mask  Mask
}

var catalog = []Definition{
	{Name: "L", Color: BlockOrange, Mask: MustParseMask("###", "#..")},
	{Name: "J", Color: BlockBlue, Mask: MustParseMask("###", "..#")},
	{Name: "O", Color: BlockYellow, Mask: MustParseMask("##", "##")},
	{Name: "I", Color: BlockCyan, Mask: MustParseMask("####")},
	{Name: "Z", Color: BlockRed, Mask: MustParseMask(".##", "##.")},
	{Name: "S", Color: BlockGreen, Mask: MustParseMask("##.", ".##")},
	{Name: "T", Color: BlockMagenta, Mask: MustParseMask(".#.", "###")},
}

// Count returns the number of piece definitions.
func Count() int {
	return len(catalog)
}

// DefinitionAt returns the definition at index i. The returned mask is a copy
// and may be modified freely.
func DefinitionAt(i int) (Definition, error) {
	if i < 0 || i >= len(catalog) {
		return Definition{}, errors.Wrapf(ErrOutOfRange, "piece index %d not in [0,%d)", i, len(catalog))
	}

	d := catalog[i]
	d.Mask = d.Mask.Copy()

	return d, nil
}

// Lookup returns the index of the definition with the given name.
func Lookup(name string) (int, error) {
	for i := range catalog {
		if catalog[i].Name == name {
			return i, nil
		}
	}

	return -1, errors.Wrapf(ErrOutOfRange, "unknown piece %q", name)
}
