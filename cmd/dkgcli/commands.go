package main

import (
	"math/big"

	"github.com/KereMath/tiac/dkg"
	"github.com/Nik-U/pbc"
	"github.com/spf13/cobra"
)

func newGeneratePolynomialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "generate_polynomials threshold",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := atoi(args, 0)
			if err != nil {
				return err
			}

			F, err := dkg.Sample(params, t)
			if err != nil {
				return wrapCryptoError(err)
			}
			G, err := dkg.Sample(params, t)
			if err != nil {
				return wrapCryptoError(err)
			}
			commitments, err := dkg.Commit(params, F, G)
			if err != nil {
				return wrapCryptoError(err)
			}

			log.Debug().Int("threshold", t).Msg("generated polynomials")

			return writeJSON(map[string]interface{}{
				"F_coeffs": scalarsToHex(F.Coeffs),
				"G_coeffs": scalarsToHex(G.Coeffs),
				"commitments": map[string]interface{}{
					"V_x":        elementsToHex(commitments.Vx),
					"V_y":        elementsToHex(commitments.Vy),
					"V_y_prime":  elementsToHex(commitments.VyPrime),
				},
			})
		},
	}
}

func newEvaluatePolynomialCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "evaluate_polynomial threshold receiver F_coeffs... G_coeffs...",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := atoi(args, 0)
			if err != nil {
				return err
			}
			receiver, err := atoi(args, 1)
			if err != nil {
				return err
			}

			n := t + 1
			rest := args[2:]
			if len(rest) != 2*n {
				return wrapUserError(errMissingArg(2 + 2*n - 1))
			}

			Fcoeffs, err := hexToScalars(rest[:n])
			if err != nil {
				return wrapUserError(err)
			}
			Gcoeffs, err := hexToScalars(rest[n:])
			if err != nil {
				return wrapUserError(err)
			}

			F := &dkg.Polynomial{Coeffs: Fcoeffs}
			G := &dkg.Polynomial{Coeffs: Gcoeffs}

			Fi := F.Eval(params, int64(receiver))
			Gi := G.Eval(params, int64(receiver))

			return writeJSON(map[string]interface{}{
				"F": params.EncodeScalarHex(Fi),
				"G": params.EncodeScalarHex(Gi),
			})
		},
	}
}

func newVerifyShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "verify_share threshold my_index F_share G_share V_x... V_y... V_y_prime...",
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := atoi(args, 0)
			if err != nil {
				return err
			}
			myIndex, err := atoi(args, 1)
			if err != nil {
				return err
			}
			Fshare, err := params.DecodeScalarHex(args[2])
			if err != nil {
				return wrapUserError(err)
			}
			Gshare, err := params.DecodeScalarHex(args[3])
			if err != nil {
				return wrapUserError(err)
			}

			n := t + 1
			rest := args[4:]
			if len(rest) != 3*n {
				return wrapUserError(errMissingArg(4 + 3*n - 1))
			}

			Vx, err := hexToG2Elements(rest[0:n])
			if err != nil {
				return wrapUserError(err)
			}
			Vy, err := hexToG2Elements(rest[n : 2*n])
			if err != nil {
				return wrapUserError(err)
			}
			VyPrime, err := hexToG1Elements(rest[2*n : 3*n])
			if err != nil {
				return wrapUserError(err)
			}

			commitments := &dkg.Commitments{Vx: Vx, Vy: Vy, VyPrime: VyPrime}
			valid := dkg.VerifyShare(params, commitments, int64(myIndex), Fshare, Gshare)

			log.Debug().Int("index", myIndex).Bool("valid", valid).Msg("verified share")

			return writeJSON(map[string]interface{}{"valid": valid})
		},
	}
}

func newAggregateMVKCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "aggregate_mvk threshold num_qualified indices... commitments...",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := atoi(args, 0)
			if err != nil {
				return err
			}
			numQ, err := atoi(args, 1)
			if err != nil {
				return err
			}

			rest := args[2:]
			if len(rest) != numQ+3*numQ {
				return wrapUserError(errMissingArg(len(args)))
			}
			indices := rest[:numQ]
			commitHex := rest[numQ:]

			qualified := make(map[int]*dkg.Commitments, numQ)
			for i := 0; i < numQ; i++ {
				idx, err := parseInt(indices[i])
				if err != nil {
					return wrapUserError(err)
				}
				vx0, err := params.DecodeG2Hex(commitHex[3*i])
				if err != nil {
					return wrapUserError(err)
				}
				vy0, err := params.DecodeG2Hex(commitHex[3*i+1])
				if err != nil {
					return wrapUserError(err)
				}
				vyp0, err := params.DecodeG1Hex(commitHex[3*i+2])
				if err != nil {
					return wrapUserError(err)
				}
				qualified[idx] = &dkg.Commitments{
					Vx:      []*pbc.Element{vx0},
					Vy:      []*pbc.Element{vy0},
					VyPrime: []*pbc.Element{vyp0},
				}
			}

			mvk, err := dkg.AggregateMVK(params, t, qualified)
			if err != nil {
				return wrapCryptoError(err)
			}

			return writeJSON(map[string]interface{}{
				"alpha2": tiacEncodeG2(mvk.Alpha2),
				"beta2":  tiacEncodeG2(mvk.Beta2),
				"beta1":  tiacEncodeG1(mvk.Beta1),
			})
		},
	}
}

func newComputeSigningKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "compute_signing_key threshold num_qualified my_index (F_share,G_share)...",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := atoi(args, 0) // threshold, unused beyond validation symmetry with other subcommands
			if err != nil {
				return err
			}
			numQ, err := atoi(args, 1)
			if err != nil {
				return err
			}
			myIndex, err := atoi(args, 2)
			if err != nil {
				return err
			}

			rest := args[3:]
			if len(rest) != 2*numQ {
				return wrapUserError(errMissingArg(3 + 2*numQ - 1))
			}

			shares := make(map[int][2]*big.Int, numQ)
			for i := 0; i < numQ; i++ {
				Fi, err := params.DecodeScalarHex(rest[2*i])
				if err != nil {
					return wrapUserError(err)
				}
				Gi, err := params.DecodeScalarHex(rest[2*i+1])
				if err != nil {
					return wrapUserError(err)
				}
				shares[i] = [2]*big.Int{Fi, Gi}
			}

			sgk1, sgk2 := dkg.ComputeSigningKey(params, myIndex, shares)

			return writeJSON(map[string]interface{}{
				"sgk1": params.EncodeScalarHex(sgk1),
				"sgk2": params.EncodeScalarHex(sgk2),
			})
		},
	}
}

func newComputeVerificationKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:  "compute_verification_keys threshold num_qualified my_index commitments...",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := atoi(args, 0)
			if err != nil {
				return err
			}
			numQ, err := atoi(args, 1)
			if err != nil {
				return err
			}
			myIndex, err := atoi(args, 2)
			if err != nil {
				return err
			}

			n := t + 1
			rest := args[3:]
			if len(rest) != numQ*3*n {
				return wrapUserError(errMissingArg(3 + numQ*3*n - 1))
			}

			qualified := make(map[int]*dkg.Commitments, numQ)
			for i := 0; i < numQ; i++ {
				block := rest[i*3*n : (i+1)*3*n]
				Vx, err := hexToG2Elements(block[0:n])
				if err != nil {
					return wrapUserError(err)
				}
				Vy, err := hexToG2Elements(block[n : 2*n])
				if err != nil {
					return wrapUserError(err)
				}
				VyPrime, err := hexToG1Elements(block[2*n : 3*n])
				if err != nil {
					return wrapUserError(err)
				}
				qualified[i] = &dkg.Commitments{Vx: Vx, Vy: Vy, VyPrime: VyPrime}
			}

			key := dkg.ComputeVerificationKeys(params, myIndex, qualified)

			return writeJSON(map[string]interface{}{
				"vk1": tiacEncodeG2(key.Vk1),
				"vk2": tiacEncodeG2(key.Vk2),
				"vk3": tiacEncodeG1(key.Vk3),
			})
		},
	}
}
