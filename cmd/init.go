package cmd

import (
	"errors"
	"os"

	"github.com/genemuffin/genemuffind/repo"
)

// Init initializes a new GeneMuffin node at the provided path.
type Init struct {
	DataDir  string `short:"d" long:"datadir" description:"Directory to store data"`
	Mnemonic string `short:"m" long:"mnemonic" description:"A mnemonic seed to initialize the node with"`
	Force    bool   `short:"f" long:"force" description:"Force overwrite existing repo (dangerous!)"`
}

// Execute initializes the GeneMuffin node.
func (x *Init) Execute(args []string) error {
	if x.DataDir == "" {
		x.DataDir = repo.DefaultHomeDir
	}

	if repo.IsInitialized(x.DataDir) && !x.Force {
		return errors.New("node is already initialized")
	}

	os.RemoveAll(x.DataDir)

	var (
		r   *repo.Repo
		err error
	)
	if x.Mnemonic != "" {
		r, err = repo.NewRepoWithCustomMnemonicSeed(x.DataDir, x.Mnemonic)
	} else {
		r, err = repo.NewRepo(x.DataDir)
	}
	if err != nil {
		return err
	}
	r.Close()
	return nil
}
