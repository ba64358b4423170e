package savev1

import (
	"io"
)

func Save(w io.Writer, a Archive) error {
	data, err := a.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func Load(r io.Reader) (Archive, error) {
	a := Archive{}

	data, err := io.ReadAll(r)
	if err != nil {
		return a, err
	}

	err = a.UnmarshalJSON(data)
	if err != nil {
		return a, err
	}
	return a, nil
}
