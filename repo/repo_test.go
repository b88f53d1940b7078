package repo

import (
	"os"
	"path"
	"testing"

	"github.com/genemuffin/genemuffind/database"
	"github.com/genemuffin/genemuffind/models"
)

func TestNewRepo(t *testing.T) {
	var dir = path.Join(os.TempDir(), "genemuffin", "newRepoTest")
	r, err := NewRepo(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer r.DestroyRepo()

	if r.DB() == nil {
		t.Error("Failed to initialize the database")
	}

	if !IsInitialized(dir) {
		t.Error("Failed to write the version file")
	}

	var mnemonic models.Key
	err = r.DB().View(func(tx database.Tx) error {
		return tx.Read().Where("name = ?", "mnemonic").First(&mnemonic).Error
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(mnemonic.Value) == 0 {
		t.Error("Failed to generate a mnemonic")
	}
}

func TestNewRepoWithCustomMnemonicSeed(t *testing.T) {
	var (
		dir      = path.Join(os.TempDir(), "genemuffin", "newRepoMnemonicTest")
		mnemonic = "abc"
	)
	r, err := NewRepoWithCustomMnemonicSeed(dir, mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	defer r.DestroyRepo()

	var dbSeed models.Key
	err = r.DB().View(func(tx database.Tx) error {
		return tx.Read().Where("name = ?", "mnemonic").First(&dbSeed).Error
	})
	if err != nil {
		t.Fatal(err)
	}

	if string(dbSeed.Value) != mnemonic {
		t.Errorf("Failed to set correct mnemonic. Expected %s, got %s", mnemonic, string(dbSeed.Value))
	}
}
