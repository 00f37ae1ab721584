/*
Package seamcarve is a content aware image reduction library. It shrinks an
image horizontally and vertically by repeatedly removing the connected path
of pixels ("seam") of lowest energy, instead of scaling every pixel
uniformly.

The pipeline of one iteration is:

	image -> ComputeEnergy -> FindSeam -> RemoveSeam -> narrower image

The energy of a pixel is its dual gradient: the square root of the summed
squared RGB differences between its left/right and its upper/lower
neighbours, where the borders wrap around to the opposite side of the
image. Seams are found by dynamic programming from the top row to the
bottom row. Horizontal seams are removed by transposing the image,
carving it vertically and transposing it back.

The package also ships a command line interface:

	$ seamcarve -in photo.jpg -width 640 -height 480

In case you wish to integrate the API in a self constructed environment here is a simple example:

	c, err := seamcarve.NewCarver(img.Bounds().Dx(), img.Bounds().Dy())
	if err != nil {
		log.Fatal(err)
	}
	res, err := c.Resize(img, 640, 480)
	if err != nil {
		log.Fatalf("error rescaling image: %v", err)
	}
*/
package seamcarve
