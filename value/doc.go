// SPDX-License-Identifier: MIT

// Package value computes isopsephy: the sum of the numeral values of the
// letters of a letter, word or phrase.
//
// A Calculator works over one alphabet.Registry and accepts native script
// as well as its Latin transliteration:
//
//	calc := value.New(alphabet.Greek())
//	v, err := calc.Value("λογος")   // 373
//	v, err  = calc.Value("logos")   // 373
//
// Input is never normalized implicitly. Characters outside the alphabet and
// literal digits fail with ErrUnsupportedCharacter; run the text through the
// normalize package first when it may carry accents or punctuation.
//
// The digit helpers (DigitalRoot, DigitSum, DigitProduct) are script
// independent. DigitSum and DigitProduct skip zero digits on purpose, a
// numerological convention kept from the original tables: DigitSum(105) is 6
// and DigitProduct(105) is 5, not 0.
package value
