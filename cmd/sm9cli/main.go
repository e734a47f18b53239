// Command sm9cli is a small demonstration harness for the sm9 module: it
// stands up a single in-process KGC with a fixed-for-the-session master
// secret per scheme, derives a couple of identities under it, and runs one
// round of whichever operation was requested. It exists to exercise the
// library end to end, not as a substitute for a real KGC deployment.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sm9kit/sm9-go/pkg/sm9"
	"github.com/sm9kit/sm9-go/pkg/sm9/hashscalar"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log.Printf("sm9-go version: %s", sm9.Version)

	var err error
	switch os.Args[1] {
	case "sign":
		err = runSign(os.Args[2:])
	case "encrypt":
		err = runEncrypt(os.Args[2:])
	case "exchange":
		err = runExchange(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("sm9cli: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sm9cli <sign|encrypt> [-id NAME] [-message TEXT]")
	fmt.Fprintln(os.Stderr, "       sm9cli exchange [-id-a NAME] [-id-b NAME] [-klen N]")
}

// kgcDeriveG1 and kgcDeriveG2 apply the standard master-secret derivation
// formula d = k*(H1(ID||hid)+k)^-1 * base. This is demonstration scaffolding
// standing in for a real KGC; production deployments keep the master secret
// k off of any machine that runs this binary.
func kgcDeriveG1(master *sm9.Scalar, id []byte, hid sm9.Hid) *sm9.G1 {
	t2 := kgcT2(master, id, hid)
	return sm9.G1Base().Mul(t2)
}

func kgcDeriveG2(master *sm9.Scalar, id []byte, hid sm9.Hid) *sm9.G2 {
	t2 := kgcT2(master, id, hid)
	return sm9.G2Base().Mul(t2)
}

func kgcT2(master *sm9.Scalar, id []byte, hid sm9.Hid) *sm9.Scalar {
	h1, err := hashscalar.H1(id, byte(hid))
	if err != nil {
		log.Fatalf("sm9cli: deriving h1: %v", err)
	}
	t1 := h1.Add(master)
	t1Inv, err := t1.Inverse()
	if err != nil {
		log.Fatalf("sm9cli: inverting t1: %v", err)
	}
	return master.Mul(t1Inv)
}

func runSign(args []string) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	id := fs.String("id", "Alice", "signer identity")
	message := fs.String("message", "hello, sm9", "message to sign")
	if err := fs.Parse(args); err != nil {
		return err
	}

	master := sm9.NewScalarFromBytes([]byte("sm9cli demo signing master secret, not for production use"))
	key := &sm9.SigningKey{
		Ppubs: sm9.G2Base().Mul(master),
		Ds:    kgcDeriveG1(master, []byte(*id), sm9.HidSign),
	}

	sig, err := sm9.Sign(key, []byte(*message))
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}
	der, err := sig.Encode()
	if err != nil {
		return fmt.Errorf("encode signature: %w", err)
	}
	fmt.Printf("signature (%d bytes DER): %x\n", len(der), der)

	status, err := sm9.Verify(key.Ppubs, []byte(*id), []byte(*message), sig)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if status != sm9.StatusValid {
		return errors.New("freshly produced signature failed to verify")
	}
	fmt.Println("verification: valid")
	return nil
}

func runEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	id := fs.String("id", "Bob", "recipient identity")
	message := fs.String("message", "hello, sm9", "plaintext to encrypt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	master := sm9.NewScalarFromBytes([]byte("sm9cli demo encryption master secret, not for production use"))
	ppube := sm9.G1Base().Mul(master)
	de := kgcDeriveG2(master, []byte(*id), sm9.HidEncrypt)

	env, err := sm9.Encrypt(ppube, []byte(*id), []byte(*message))
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	der, err := env.Encode()
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	fmt.Printf("ciphertext (%d bytes DER): %x\n", len(der), der)

	plaintext, err := sm9.Decrypt(de, []byte(*id), env)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	fmt.Printf("decrypted: %s\n", plaintext)
	return nil
}

func runExchange(args []string) error {
	fs := flag.NewFlagSet("exchange", flag.ExitOnError)
	idA := fs.String("id-a", "Alice", "initiator identity")
	idB := fs.String("id-b", "Bob", "responder identity")
	klen := fs.Int("klen", 16, "shared key length in bytes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	master := sm9.NewScalarFromBytes([]byte("sm9cli demo exchange master secret, not for production use"))
	ppube := sm9.G1Base().Mul(master)
	deA := kgcDeriveG2(master, []byte(*idA), sm9.HidExchange)
	deB := kgcDeriveG2(master, []byte(*idB), sm9.HidExchange)

	stateA, err := sm9.StepA1(ppube, []byte(*idB))
	if err != nil {
		return fmt.Errorf("step 1A: %w", err)
	}
	defer stateA.Free()

	RB, skB, matB, err := sm9.StepB1(ppube, []byte(*idA), []byte(*idB), deB, stateA.RA, *klen)
	if err != nil {
		return fmt.Errorf("step 1B: %w", err)
	}
	defer matB.Free()

	skA, matA, err := sm9.StepA2(ppube, []byte(*idA), []byte(*idB), deA, stateA, RB, *klen)
	if err != nil {
		return fmt.Errorf("step 2A: %w", err)
	}
	defer matA.Free()

	sb := matB.ConfirmB()
	if matA.ConfirmB() != sb {
		return errors.New("confirmation tag mismatch: key exchange did not agree")
	}

	fmt.Printf("A's key: %x\n", skA)
	fmt.Printf("B's key: %x\n", skB)
	fmt.Println("confirmation tags match")
	return nil
}
