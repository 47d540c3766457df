package crypt_util

import (
	"os"
	"sync"

	"github.com/farmerx/gorsa"

	"inventory-backend/pkg/logger"
	"inventory-backend/util"
)

var once sync.Once
var internalCryptUtil *CryptUtil

type CryptUtil struct {
	ready bool
}

// New loads the RSA keypair from storage/keys under the app root. A missing
// or unreadable keypair leaves the util in pass-through mode, so notify
// messages go out unencrypted instead of killing the run.
func New() *CryptUtil {
	once.Do(func() {
		internalCryptUtil = &CryptUtil{}
		rootDir := util.GetRootDir()

		privateKeyPEM, err := os.ReadFile(rootDir + "/storage/keys/privateKey.pem")
		if err != nil {
			logger.Println("private key not found, publishing unencrypted")
			return
		}
		if err := gorsa.RSA.SetPrivateKey(string(privateKeyPEM)); err != nil {
			logger.Errorf("set private key: %v", err)
			return
		}
		publicKeyPEM, err := os.ReadFile(rootDir + "/storage/keys/publicKey.pem")
		if err == nil {
			if err := gorsa.RSA.SetPublicKey(string(publicKeyPEM)); err != nil {
				logger.Errorf("set public key: %v", err)
				return
			}
		}
		internalCryptUtil.ready = true
	})

	return internalCryptUtil
}

func (cu *CryptUtil) Ready() bool {
	return cu.ready
}

func (cu *CryptUtil) EncryptViaPrivate(input []byte) ([]byte, error) {
	if !cu.ready {
		return input, nil
	}
	return gorsa.RSA.PriKeyENCTYPT(input)
}

func (cu *CryptUtil) DecryptViaPrivate(input []byte) ([]byte, error) {
	if !cu.ready {
		return input, nil
	}
	return gorsa.RSA.PriKeyDECRYPT(input)
}
