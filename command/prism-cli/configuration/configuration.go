// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/prismpapers/prismd/account"
	"github.com/prismpapers/prismd/fault"
)

// errors
var (
	ErrIdentityNameNotFound      = fault.NotFoundError("identity name not found")
	ErrIdentityNameAlreadyExists = fault.ExistsError("identity name already exists")
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Load - read the configuration
func Load(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	dec := json.NewDecoder(f)
	if err := dec.Decode(options); nil != err {
		return nil, err
	}
	return options, nil
}

// Save - atomically write the configuration
func Save(fileName string, config *Configuration) error {

	data, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}

	tempFile := fileName + ".new"
	if err := ioutil.WriteFile(tempFile, data, 0o600); nil != err {
		return err
	}
	return os.Rename(tempFile, fileName)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.AccountFromBase58(id.Account)
}

// Private - find identity and decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, privateKey *account.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	if _, err := account.AccountFromBase58(acc); nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
		Data:        "",
		Salt:        "",
	}

	return nil
}
