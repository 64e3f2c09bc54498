package yamlstorage

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libanimation/animation"
	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// NewYAMLStorage keeps one YAML file per curve under root.
func NewYAMLStorage(root string) animation.KeyframeStorage {
	return &yamlStorageImpl{
		root: root,
	}
}

type yamlStorageImpl struct {
	root string
}

func (stg *yamlStorageImpl) fileNameByName(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", animation.ErrInvalidArgument
	}

	return path.Join(stg.root, name+fileExt), nil
}

func (stg *yamlStorageImpl) SaveCurve(name string, def animation.CurveDef) (err error) {
	fileName, err := stg.fileNameByName(name)
	if err != nil {
		return
	}

	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(&def)
	if err != nil {
		return
	}

	err = os.WriteFile(fileName, d, 0600)

	return
}

func (stg *yamlStorageImpl) LoadCurve(name string) (def animation.CurveDef, err error) {
	fileName, err := stg.fileNameByName(name)
	if err != nil {
		return
	}

	d, err := os.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal(d, &def)

	return
}

func (stg *yamlStorageImpl) DelCurve(name string) (err error) {
	fileName, err := stg.fileNameByName(name)
	if err != nil {
		return
	}

	err = os.Remove(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		err = commerr.ErrNotFound
	}

	return
}

func (stg *yamlStorageImpl) ListCurves() (names []string, err error) {
	entries, err := os.ReadDir(stg.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}

		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}

	sort.Strings(names)

	return
}
