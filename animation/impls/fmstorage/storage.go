package fmstorage

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libanimation/animation"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

func NewFMStorage(root string, storage stg.FileStorage) animation.KeyframeStorage {
	return NewFMStorageEx(root, storage, "curves.json", false)
}

func NewFMStorageEx(root string, storage stg.FileStorage, fileName string, prettySerial bool) animation.KeyframeStorage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fmStorageImpl{
		curveStorage: mwf.NewMemWithFile[map[string]animation.CurveDef, mwf.Serial, mwf.Lock](
			make(map[string]animation.CurveDef), &mwf.JSONSerial{
				MarshalIndent: prettySerial,
			}, &sync.RWMutex{}, filepath.Join(root, fileName), storage),
	}
}

type fmStorageImpl struct {
	curveStorage *mwf.MemWithFile[map[string]animation.CurveDef, mwf.Serial, mwf.Lock]
}

func (impl *fmStorageImpl) SaveCurve(name string, def animation.CurveDef) error {
	if name == "" {
		return animation.ErrInvalidArgument
	}

	def.Keyframes = append([]animation.KeyframeDef(nil), def.Keyframes...)

	return impl.curveStorage.Change(func(oldM map[string]animation.CurveDef) (newM map[string]animation.CurveDef, err error) {
		newM = oldM
		if newM == nil {
			newM = make(map[string]animation.CurveDef)
		}

		newM[name] = def

		return
	})
}

func (impl *fmStorageImpl) LoadCurve(name string) (def animation.CurveDef, err error) {
	impl.curveStorage.Read(func(d map[string]animation.CurveDef) {
		cd, ok := d[name]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		def = cd
		def.Keyframes = append([]animation.KeyframeDef(nil), cd.Keyframes...)
	})

	return
}

func (impl *fmStorageImpl) DelCurve(name string) error {
	return impl.curveStorage.Change(func(oldM map[string]animation.CurveDef) (newM map[string]animation.CurveDef, err error) {
		newM = oldM

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}

func (impl *fmStorageImpl) ListCurves() (names []string, err error) {
	impl.curveStorage.Read(func(d map[string]animation.CurveDef) {
		for name := range d {
			names = append(names, name)
		}
	})

	sort.Strings(names)

	return
}
