package services

// Banner text is drawn in a five-row block font.
const (
	salesReportBanner = ` ####     ##    #       ######   ####        #####   ######  #####    ####   #####   ######
#        #  #   #       #       #            #    #  #       #    #  #    #  #    #    ##
 ####   ######  #       ####     ####        #####   ####    #####   #    #  #####     ##
     #  #    #  #       #            #       #   #   #       #       #    #  #   #     ##
 ####   #    #  ######  ######   ####        #    #  ######  #        ####   #    #    ##`

	productsBanner = `#####   #####    ####   #####   #    #   ####   ######   ####
#    #  #    #  #    #  #    #  #    #  #         ##    #
#####   #####   #    #  #    #  #    #  #         ##     ####
#       #   #   #    #  #    #  #    #  #         ##         #
#       #    #   ####   #####    ####    ####     ##     ####`

	brandsBanner = `#####   #####     ##    #    #  #####    ####
#    #  #    #   #  #   ##   #  #    #  #
#####   #####   ######  # #  #  #    #   ####
#    #  #   #   #    #  #  # #  #    #       #
#####   #    #  #    #  #   ##  #####    ####`
)
