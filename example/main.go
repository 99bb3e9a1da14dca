package main

import (
	"fmt"

	"github.com/complex-gh/shamir39_go"
	"github.com/complex-gh/shamir39_go/lang"
)

func main() {
	// Get the English language
	langEn := lang.GetLang(0) // English is first
	if langEn == nil {
		panic("language not found")
	}

	mnemonic := lang.SplitPhrase("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	// Split into 3 shares, any 2 of which recover the mnemonic
	shares, err := shamir39.Split(mnemonic, "TREZOR", langEn, 2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Generated shares:\n")
	for _, s := range shares {
		fmt.Printf("%s\n", langEn.Join(s))
	}
	fmt.Println()

	// Combine two of them back
	res, err := shamir39.Combine([][]string{shares[2], shares[0]}, langEn)
	if err != nil {
		fmt.Printf("Error combining: %v\n", err)
		return
	}

	fmt.Printf("Successfully combined shares!\n")
	fmt.Printf("Mnemonic: %s\n", langEn.Join(res.Mnemonic))
	fmt.Printf("Passphrase: %s\n", res.Passphrase)
	fmt.Printf("Seed check: %s\n", shamir39.SeedCheck(res.Mnemonic, res.Passphrase))
}
