// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/note_cipher_mock.go -package=mock

// NoteCipher отвечает за всю криптографию клиента. Он ничего не знает о
// сети, кэше или протоколе синхронизации.
//
// Схема (версия конверта 0x02):
//
//	ikm      = Argon2id(passcode, salt)
//	key      = HKDF-SHA256(ikm, info=KeyContext)
//	envelope = version ‖ salt ‖ nonce ‖ timestamp ‖ AES-256-GCM(key, nonce, plaintext, aad=timestamp)
//
// Соль и nonce новые для каждого сообщения, поэтому два сообщения никогда не
// делят один ключ.
type NoteCipher interface {
	// DeriveKey пропускает пароль через Argon2id и расширяет результат через
	// HKDF до 32-байтового ключа AES, привязанного к KeyContext.
	DeriveKey(passcode string, salt []byte) ([]byte, error)

	// Encrypt запечатывает plaintext в конверт base64.
	// Возвращает ErrNotConfigured при пустом пароле.
	Encrypt(passcode, plaintext string) (string, error)

	// Decrypt открывает конверт, созданный Encrypt. Любое сомнение в
	// подлинности даёт ошибку, а не открытый текст.
	Decrypt(passcode, envelope string) (string, error)
}
