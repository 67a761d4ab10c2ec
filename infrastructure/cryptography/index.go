package cryptography

import "github.com/matthewhartstonge/argon2"

var CryptoHasher Hasher = argonHasher{config: argon2.DefaultConfig()}
